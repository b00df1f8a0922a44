package request

import "pagseguro_gateway/internal/domain/entities"

type InvoiceDateRequest struct {
	Day   int `json:"day" binding:"min=1,max=31"`
	Month int `json:"month" binding:"min=1,max=12"`
}

type SubscriptionDataRequest struct {
	PlanID              string              `json:"plan_id" binding:"required_without=PlanReferenceID"`
	PlanReferenceID     string              `json:"plan_reference_id"`
	CustomerID          string              `json:"customer_id"`
	CustomerReferenceID string              `json:"customer_reference_id"`
	ReferenceID         string              `json:"reference_id"`
	BestInvoiceDate     *InvoiceDateRequest `json:"best_invoice_date"`
}

// SubscriptionRequest is the body of POST /v1/subscriptions. Sender, shipping and
// payment feed the customer synthesized when no customer id or reference is given.
type SubscriptionRequest struct {
	Reference    string                  `json:"reference"`
	Sender       SenderRequest           `json:"sender"`
	Shipping     *ShippingRequest        `json:"shipping"`
	Items        []ItemRequest           `json:"items" binding:"dive"`
	Payment      *PaymentRequest         `json:"payment"`
	Subscription SubscriptionDataRequest `json:"subscription" binding:"required"`
}

func (r SubscriptionRequest) ToState() entities.TransactionState {
	state := CheckoutRequest{
		Reference: r.Reference,
		Sender:    r.Sender,
		Shipping:  r.Shipping,
		Items:     r.Items,
		Payment:   r.Payment,
	}.ToState()

	s := r.Subscription
	sub := &entities.Subscription{
		PlanID:              s.PlanID,
		PlanReferenceID:     s.PlanReferenceID,
		CustomerID:          s.CustomerID,
		CustomerReferenceID: s.CustomerReferenceID,
		ReferenceID:         s.ReferenceID,
	}
	if s.BestInvoiceDate != nil {
		sub.BestInvoiceDate = &entities.InvoiceDate{Day: s.BestInvoiceDate.Day, Month: s.BestInvoiceDate.Month}
	}
	state.Subscription = sub
	return state
}
