package interfaces

import (
	"context"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/pkg/pagination"
)

// IPreApprovalGateway abstracts the legacy recurring-payment (pre-approval) API.
type IPreApprovalGateway interface {
	CheckPreApprovalNotification(ctx context.Context, code string) (entities.PreApproval, error)
	PreApprovalAskPayment(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.PreApprovalPayment, error)
	PreApprovalCancel(ctx context.Context, code string) (entities.PreApprovalCancel, error)
	QueryPreApprovals(ctx context.Context, q pagination.Query) ([]entities.PreApproval, error)
	QueryPreApprovalByCode(ctx context.Context, code string) (entities.PreApproval, error)
	ReferencePrefix() entities.ReferenceTemplate
}
