package usecase

import (
	"context"
	"errors"
	"testing"

	"pagseguro_gateway/internal/domain/entities"
	mock_interfaces "pagseguro_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_Handle(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil, nil)
		if _, err := uc.Handle(context.Background(), "refund", "N1"); !errors.Is(err, ErrInvalidNotificationType) {
			t.Fatalf("expected ErrInvalidNotificationType, got %v", err)
		}
	})

	t.Run("empty code", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil, nil)
		if _, err := uc.Handle(context.Background(), "transaction", " "); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("expected ErrInvalidCode, got %v", err)
		}
	})

	t.Run("transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		txGateway := mock_interfaces.NewMockITransactionGateway(ctrl)
		paGateway := mock_interfaces.NewMockIPreApprovalGateway(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewNotificationUseCase(txGateway, paGateway, pub, nil)

		txGateway.EXPECT().CheckNotification(gomock.Any(), "N1").Return(entities.Transaction{Code: "TX-1", Reference: "order-1", Status: 3}, nil)
		pub.EXPECT().Publish(gomock.Any(), SubjectNotificationTransaction, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, data any) error {
			ev := data.(NotificationEvent)
			if ev.Reference != "order-1" || ev.Status != "PAID" || ev.Type != "transaction" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		})

		n, err := uc.Handle(context.Background(), "transaction", "N1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Transaction == nil || n.PreApproval != nil || n.Transaction.Code != "TX-1" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})

	t.Run("pre-approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		paGateway := mock_interfaces.NewMockIPreApprovalGateway(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewNotificationUseCase(nil, paGateway, pub, nil)

		paGateway.EXPECT().CheckPreApprovalNotification(gomock.Any(), "N2").Return(entities.PreApproval{Code: "PA-1", Status: "ACTIVE"}, nil)
		pub.EXPECT().Publish(gomock.Any(), SubjectNotificationPreApproval, gomock.Any()).Return(nil)

		n, err := uc.Handle(context.Background(), "preApproval", "N2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.PreApproval == nil || n.Status() != "ACTIVE" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})

	t.Run("gateway failure publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		txGateway := mock_interfaces.NewMockITransactionGateway(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewNotificationUseCase(txGateway, nil, pub, nil)

		txGateway.EXPECT().CheckNotification(gomock.Any(), "N1").Return(entities.Transaction{}, &entities.GatewayError{Status: 401})

		if _, err := uc.Handle(context.Background(), "transaction", "N1"); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}
