package response

import (
	"time"

	"pagseguro_gateway/internal/domain/entities"
)

type CheckoutResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ReferenceID string    `json:"reference_id"`
	Status      string    `json:"status"`
	PaymentURL  string    `json:"payment_url,omitempty"`
	Date        time.Time `json:"date"`

	ResponseRaw string                 `json:"response_raw,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
}

func FromCheckoutRecord(r entities.CheckoutRecord) CheckoutResponse {
	return CheckoutResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		ReferenceID: r.ReferenceID,
		Status:      r.Status,
		PaymentURL:  r.PaymentURL,
		Date:        r.Date,
		ResponseRaw: string(r.ResponseRaw),
		Response:    r.Response,
	}
}

func FromCheckoutRecords(rs []entities.CheckoutRecord) []CheckoutResponse {
	out := make([]CheckoutResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromCheckoutRecord(r))
	}
	return out
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	PublicKey string `json:"public_key,omitempty"`
}

func FromSession(s entities.CheckoutSession) SessionResponse {
	return SessionResponse{SessionID: s.ID, PublicKey: s.PublicKey}
}

type SubscriptionResponse struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id,omitempty"`
	Status      string `json:"status"`
	PlanID      string `json:"plan_id,omitempty"`
	CustomerID  string `json:"customer_id,omitempty"`
}

func FromSubscription(s entities.SubscriptionResponse) SubscriptionResponse {
	return SubscriptionResponse{
		ID:          s.ID,
		ReferenceID: s.ReferenceID,
		Status:      s.Status,
		PlanID:      s.PlanID,
		CustomerID:  s.CustomerID,
	}
}
