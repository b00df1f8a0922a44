package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase/interfaces"
)

// INotificationUseCase resolves the codes PagSeguro posts to the notification URL.
type INotificationUseCase interface {
	Handle(ctx context.Context, notificationType, code string) (entities.Notification, error)
}

type NotificationUseCase struct {
	transactions interfaces.ITransactionGateway
	preApprovals interfaces.IPreApprovalGateway
	publisher    interfaces.IEventPublisher
	logger       *zap.Logger
	now          func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(transactions interfaces.ITransactionGateway, preApprovals interfaces.IPreApprovalGateway, publisher interfaces.IEventPublisher, logger *zap.Logger) *NotificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationUseCase{
		transactions: transactions,
		preApprovals: preApprovals,
		publisher:    publisher,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *NotificationUseCase) Handle(ctx context.Context, notificationType, code string) (entities.Notification, error) {
	typ, ok := entities.ParseNotificationType(notificationType)
	if !ok {
		return entities.Notification{}, ErrInvalidNotificationType
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Notification{}, ErrInvalidCode
	}

	log := u.logger.With(zap.String("type", string(typ)), zap.String("code", code))
	log.Info("[notification][usecase] received")

	n := entities.Notification{Type: typ, Code: code, ReceivedAt: u.now()}
	event := NotificationEvent{Type: string(typ), Code: code, ReceivedAt: n.ReceivedAt}
	subject := SubjectNotificationTransaction

	switch typ {
	case entities.NotificationTransaction:
		tx, err := u.transactions.CheckNotification(ctx, code)
		if err != nil {
			log.Error("[notification][usecase] transaction lookup failed", zap.Error(err))
			return entities.Notification{}, mapGatewayError(err)
		}
		n.Transaction = &tx
		event.Reference = tx.Reference
	case entities.NotificationPreApproval:
		pa, err := u.preApprovals.CheckPreApprovalNotification(ctx, code)
		if err != nil {
			log.Error("[notification][usecase] pre-approval lookup failed", zap.Error(err))
			return entities.Notification{}, mapGatewayError(err)
		}
		n.PreApproval = &pa
		event.Reference = pa.Reference
		subject = SubjectNotificationPreApproval
	}

	event.Status = n.Status()
	publish(ctx, u.publisher, log, subject, event)
	log.Info("[notification][usecase] resolved", zap.String("status", event.Status))
	return n, nil
}
