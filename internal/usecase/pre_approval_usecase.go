package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase/interfaces"
	"pagseguro_gateway/pkg/pagination"
)

type IPreApprovalUseCase interface {
	GetByCode(ctx context.Context, code string) (entities.PreApproval, error)
	Search(ctx context.Context, q pagination.Query) ([]entities.PreApproval, error)
	Charge(ctx context.Context, code string, state entities.TransactionState, extra map[string]any) (entities.PreApprovalPayment, error)
	Cancel(ctx context.Context, code string) (entities.PreApprovalCancel, error)
}

type PreApprovalUseCase struct {
	gateway   interfaces.IPreApprovalGateway
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
}

var _ IPreApprovalUseCase = (*PreApprovalUseCase)(nil)

func NewPreApprovalUseCase(gateway interfaces.IPreApprovalGateway, publisher interfaces.IEventPublisher, logger *zap.Logger) *PreApprovalUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreApprovalUseCase{gateway: gateway, publisher: publisher, logger: logger}
}

func (u *PreApprovalUseCase) GetByCode(ctx context.Context, code string) (entities.PreApproval, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.PreApproval{}, ErrInvalidCode
	}
	pa, err := u.gateway.QueryPreApprovalByCode(ctx, code)
	if err != nil {
		u.logger.Error("[pre-approval][usecase] lookup failed", zap.String("code", code), zap.Error(err))
		return entities.PreApproval{}, mapGatewayError(err)
	}
	return pa, nil
}

func (u *PreApprovalUseCase) Search(ctx context.Context, q pagination.Query) ([]entities.PreApproval, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	pas, err := u.gateway.QueryPreApprovals(ctx, q)
	if err != nil {
		u.logger.Error("[pre-approval][usecase] search failed", zap.Error(err))
		return nil, mapGatewayError(err)
	}
	return pas, nil
}

// Charge bills the items in state against the pre-approval identified by code.
func (u *PreApprovalUseCase) Charge(ctx context.Context, code string, state entities.TransactionState, extra map[string]any) (entities.PreApprovalPayment, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.PreApprovalPayment{}, ErrInvalidCode
	}
	if len(state.Items) == 0 {
		return entities.PreApprovalPayment{}, fmt.Errorf("%w: at least one item is required", ErrInvalidCheckout)
	}
	state.PreApprovalCode = code
	state = state.WithReference(u.gateway.ReferencePrefix(), state.Reference)

	log := u.logger.With(zap.String("code", code))
	log.Info("[pre-approval][usecase] charge start", zap.Int("items", len(state.Items)))

	payment, err := u.gateway.PreApprovalAskPayment(ctx, state, extra)
	if err != nil {
		log.Error("[pre-approval][usecase] charge failed", zap.Error(err))
		return entities.PreApprovalPayment{}, mapGatewayError(err)
	}

	publish(ctx, u.publisher, log, SubjectPreApprovalPaymentIssued, PreApprovalEvent{
		Code:            code,
		TransactionCode: payment.TransactionCode,
		Date:            payment.Date,
	})
	log.Info("[pre-approval][usecase] charge success", zap.String("transaction_code", payment.TransactionCode))
	return payment, nil
}

func (u *PreApprovalUseCase) Cancel(ctx context.Context, code string) (entities.PreApprovalCancel, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.PreApprovalCancel{}, ErrInvalidCode
	}

	res, err := u.gateway.PreApprovalCancel(ctx, code)
	if err != nil {
		u.logger.Error("[pre-approval][usecase] cancel failed", zap.String("code", code), zap.Error(err))
		return entities.PreApprovalCancel{}, mapGatewayError(err)
	}

	publish(ctx, u.publisher, u.logger, SubjectPreApprovalCancelled, PreApprovalEvent{Code: code, Status: res.Status, Date: res.Date})
	return res, nil
}
