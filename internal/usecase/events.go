package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pagseguro_gateway/internal/usecase/interfaces"
)

const (
	SubjectCheckoutCreated          = "pagseguro.checkout.created"
	SubjectNotificationTransaction  = "pagseguro.notification.transaction"
	SubjectNotificationPreApproval  = "pagseguro.notification.preapproval"
	SubjectPreApprovalPaymentIssued = "pagseguro.preapproval.payment"
	SubjectPreApprovalCancelled     = "pagseguro.preapproval.cancelled"
)

type CheckoutCreatedEvent struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ReferenceID string    `json:"reference_id"`
	Status      string    `json:"status"`
	PaymentURL  string    `json:"payment_url,omitempty"`
	Date        time.Time `json:"date"`
}

type NotificationEvent struct {
	Type       string    `json:"type"`
	Code       string    `json:"code"`
	Reference  string    `json:"reference,omitempty"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

type PreApprovalEvent struct {
	Code            string    `json:"code"`
	TransactionCode string    `json:"transaction_code,omitempty"`
	Status          string    `json:"status,omitempty"`
	Date            time.Time `json:"date"`
}

// publish never fails the caller: the gateway call already succeeded, so a lost
// event is logged and dropped.
func publish(ctx context.Context, pub interfaces.IEventPublisher, logger *zap.Logger, subject string, data any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, subject, data); err != nil {
		logger.Warn("[events][usecase] publish failed", zap.String("subject", subject), zap.Error(err))
	}
}
