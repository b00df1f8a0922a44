package entities

import (
	"encoding/json"
	"time"
)

// CheckoutResponse is the order returned by the Orders API.
//
// Raw keeps the original body for traceability, as the record persisted from it does.
type CheckoutResponse struct {
	ID          string
	ReferenceID string
	CreatedAt   time.Time
	Charges     []Charge
	Links       []Link
	PaymentURL  string

	Raw json.RawMessage
}

// Status returns the status of the first charge, or "CREATED" for orders without charges.
func (r CheckoutResponse) Status() string {
	if len(r.Charges) > 0 && r.Charges[0].Status != "" {
		return r.Charges[0].Status
	}
	return "CREATED"
}

// CheckoutSession is a transparent checkout session plus the key the storefront
// encrypts cards with.
type CheckoutSession struct {
	ID        string
	PublicKey string
}

type Charge struct {
	ID          string
	ReferenceID string
	Status      string
	Amount      int64
	Currency    string
	PaidAt      *time.Time
}

type Link struct {
	Rel   string
	Href  string
	Media string
	Type  string
}

// Transaction is returned by notification and transaction lookups and by the
// transaction search.
type Transaction struct {
	Code              string
	Reference         string
	Type              int
	Status            int
	Date              time.Time
	LastEventDate     time.Time
	PaymentMethodType int
	PaymentMethodCode int
	GrossAmount       float64
	DiscountAmount    float64
	FeeAmount         float64
	NetAmount         float64
	ExtraAmount       float64
	InstallmentCount  int
	Items             []TransactionItem
	Sender            *TransactionSender
}

type TransactionItem struct {
	ID          string
	Description string
	Quantity    int
	Amount      float64
}

type TransactionSender struct {
	Name     string
	Email    string
	AreaCode string
	Phone    string
}

// PreApproval is a recurring authorization (legacy pre-approval API).
type PreApproval struct {
	Code          string
	Name          string
	Tracker       string
	Status        string
	Reference     string
	Charge        string
	Date          time.Time
	LastEventDate time.Time
}

type PreApprovalPayment struct {
	TransactionCode string
	Date            time.Time
}

type PreApprovalCancel struct {
	Status string
	Date   time.Time
}

type Plan struct {
	ID          string
	ReferenceID string
	Name        string
	Status      string
}

type Subscriber struct {
	ID          string
	ReferenceID string
	Name        string
	Email       string
}

type SubscriptionResponse struct {
	ID          string
	ReferenceID string
	Status      string
	PlanID      string
	CustomerID  string

	Raw json.RawMessage
}
