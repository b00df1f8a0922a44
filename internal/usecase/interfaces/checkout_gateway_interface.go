package interfaces

import (
	"context"

	"pagseguro_gateway/internal/domain/entities"
)

// ICheckoutGateway abstracts the PagSeguro order, session and subscription calls.
//
// extra is merged into the request body beneath the fields built from the state.
type ICheckoutGateway interface {
	Checkout(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.CheckoutResponse, error)
	CheckoutSession(ctx context.Context) (string, error)
	Subscribe(ctx context.Context, state entities.TransactionState) (entities.SubscriptionResponse, error)
	PublicKey() string
	ReferencePrefix() entities.ReferenceTemplate
}
