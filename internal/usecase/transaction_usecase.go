package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase/interfaces"
	"pagseguro_gateway/pkg/pagination"
)

type ITransactionUseCase interface {
	GetByCode(ctx context.Context, code string) (entities.Transaction, error)
	Search(ctx context.Context, q pagination.Query) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	gateway interfaces.ITransactionGateway
	logger  *zap.Logger
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(gateway interfaces.ITransactionGateway, logger *zap.Logger) *TransactionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionUseCase{gateway: gateway, logger: logger}
}

func (u *TransactionUseCase) GetByCode(ctx context.Context, code string) (entities.Transaction, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Transaction{}, ErrInvalidCode
	}
	tx, err := u.gateway.CheckTransaction(ctx, code)
	if err != nil {
		u.logger.Error("[transaction][usecase] lookup failed", zap.String("code", code), zap.Error(err))
		return entities.Transaction{}, mapGatewayError(err)
	}
	return tx, nil
}

// Search returns every transaction in the range, across all result pages.
func (u *TransactionUseCase) Search(ctx context.Context, q pagination.Query) ([]entities.Transaction, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	txs, err := u.gateway.QueryTransactions(ctx, q)
	if err != nil {
		u.logger.Error("[transaction][usecase] search failed", zap.Time("initial", q.InitialDate), zap.Error(err))
		return nil, mapGatewayError(err)
	}
	u.logger.Info("[transaction][usecase] search success", zap.Int("count", len(txs)))
	return txs, nil
}
