package interfaces

import (
	"context"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/pkg/pagination"
)

type ITransactionGateway interface {
	CheckNotification(ctx context.Context, code string) (entities.Transaction, error)
	CheckTransaction(ctx context.Context, code string) (entities.Transaction, error)
	QueryTransactions(ctx context.Context, q pagination.Query) ([]entities.Transaction, error)
}
