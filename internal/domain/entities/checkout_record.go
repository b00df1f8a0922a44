package entities

import (
	"encoding/json"
	"time"
)

// CheckoutRecord is the checkout persisted by the gateway service after PagSeguro
// accepted the order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_id-index): reference_id
//
// ResponseRaw keeps the PagSeguro body as received; Response is its parsed form.
type CheckoutRecord struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ReferenceID string    `json:"reference_id"`
	Status      string    `json:"status"`
	PaymentURL  string    `json:"payment_url,omitempty"`
	Date        time.Time `json:"date"`

	ResponseRaw json.RawMessage        `json:"response_raw,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
}
