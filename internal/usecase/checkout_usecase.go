package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase/interfaces"
)

// ICheckoutUseCase creates PagSeguro orders and keeps a record of each accepted one.
type ICheckoutUseCase interface {
	Create(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.CheckoutRecord, error)
	CreateSession(ctx context.Context) (entities.CheckoutSession, error)
	Subscribe(ctx context.Context, state entities.TransactionState) (entities.SubscriptionResponse, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error)
	ListByReference(ctx context.Context, referenceID string) ([]entities.CheckoutRecord, error)
}

type CheckoutUseCase struct {
	repo      interfaces.ICheckoutRecordRepository
	gateway   interfaces.ICheckoutGateway
	publisher interfaces.IEventPublisher
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.ICheckoutRecordRepository, gateway interfaces.ICheckoutGateway, publisher interfaces.IEventPublisher, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *CheckoutUseCase) Create(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.CheckoutRecord, error) {
	if err := validateCheckout(state); err != nil {
		u.logger.Info("[checkout][usecase] invalid checkout", zap.Error(err))
		return entities.CheckoutRecord{}, err
	}
	state = state.WithReference(u.gateway.ReferencePrefix(), strings.TrimSpace(state.Reference))
	if state.Reference == "" {
		state.Reference = u.newID()
	}
	log := u.logger.With(zap.String("reference", state.Reference))
	log.Info("[checkout][usecase] create start", zap.Int("items", len(state.Items)))

	resp, err := u.gateway.Checkout(ctx, state, extra)
	if err != nil {
		log.Error("[checkout][usecase] gateway failed", zap.Error(err))
		return entities.CheckoutRecord{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if len(resp.Raw) > 0 {
		if err := json.Unmarshal(resp.Raw, &parsed); err != nil {
			log.Warn("[checkout][usecase] response unmarshal failed", zap.Error(err))
		}
	}

	id := resp.ID
	if id == "" {
		id = u.newID()
	}
	record := entities.CheckoutRecord{
		ID:          id,
		OrderID:     resp.ID,
		ReferenceID: state.Reference,
		Status:      resp.Status(),
		PaymentURL:  resp.PaymentURL,
		Date:        u.now(),
		ResponseRaw: resp.Raw,
		Response:    parsed,
	}

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		log.Error("[checkout][usecase] repository create failed", zap.String("id", record.ID), zap.Error(err))
		return entities.CheckoutRecord{}, err
	}

	publish(ctx, u.publisher, log, SubjectCheckoutCreated, CheckoutCreatedEvent{
		ID:          created.ID,
		OrderID:     created.OrderID,
		ReferenceID: created.ReferenceID,
		Status:      created.Status,
		PaymentURL:  created.PaymentURL,
		Date:        created.Date,
	})
	log.Info("[checkout][usecase] create success", zap.String("id", created.ID), zap.String("status", created.Status))
	return created, nil
}

func (u *CheckoutUseCase) CreateSession(ctx context.Context) (entities.CheckoutSession, error) {
	id, err := u.gateway.CheckoutSession(ctx)
	if err != nil {
		u.logger.Error("[checkout][usecase] session failed", zap.Error(err))
		return entities.CheckoutSession{}, mapGatewayError(err)
	}
	return entities.CheckoutSession{ID: id, PublicKey: u.gateway.PublicKey()}, nil
}

func (u *CheckoutUseCase) Subscribe(ctx context.Context, state entities.TransactionState) (entities.SubscriptionResponse, error) {
	if state.Subscription == nil {
		return entities.SubscriptionResponse{}, entities.ErrMissingSubscription
	}
	state = state.WithReference(u.gateway.ReferencePrefix(), state.Reference)
	resp, err := u.gateway.Subscribe(ctx, state)
	if err != nil {
		u.logger.Error("[checkout][usecase] subscribe failed", zap.Error(err))
		return entities.SubscriptionResponse{}, mapGatewayError(err)
	}
	u.logger.Info("[checkout][usecase] subscribe success", zap.String("id", resp.ID), zap.String("status", resp.Status))
	return resp, nil
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutRecord{}, ErrInvalidCheckoutID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutRecord{}, err
	}
	if r.ID == "" {
		return entities.CheckoutRecord{}, ErrCheckoutNotFound
	}
	return r, nil
}

func (u *CheckoutUseCase) ListByReference(ctx context.Context, referenceID string) ([]entities.CheckoutRecord, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return nil, ErrInvalidReference
	}
	return u.repo.ListByReferenceID(ctx, referenceID)
}

func validateCheckout(state entities.TransactionState) error {
	if len(state.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidCheckout)
	}
	for i, it := range state.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidCheckout, i+1)
		}
		if it.Amount < 0 {
			return fmt.Errorf("%w: item %d amount must not be negative", ErrInvalidCheckout, i+1)
		}
	}
	if state.Payment != nil && state.Payment.Amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", ErrInvalidCheckout)
	}
	return nil
}
