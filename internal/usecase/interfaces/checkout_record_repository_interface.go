package interfaces

import (
	"context"

	"pagseguro_gateway/internal/domain/entities"
)

// ICheckoutRecordRepository abstracts DynamoDB persistence for CheckoutRecord.
//
// GetByID returns a zero record (empty ID) when nothing is stored under id.
type ICheckoutRecordRepository interface {
	Create(ctx context.Context, r entities.CheckoutRecord) (entities.CheckoutRecord, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error)
	ListByReferenceID(ctx context.Context, referenceID string) ([]entities.CheckoutRecord, error)
}
