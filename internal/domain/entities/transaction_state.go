package entities

import "strings"

// Payment method types accepted by the Orders API.
const (
	PaymentMethodCreditCard = "CREDIT_CARD"
	PaymentMethodDebitCard  = "DEBIT_CARD"
	PaymentMethodBoleto     = "BOLETO"
	PaymentMethodPix        = "PIX"
)

// TransactionState is the checkout context read by the request builders.
//
// It is passed by value: builders never mutate it and every build starts from the
// state as it is at call time.
//
// Monetary fields are expressed in cents.
type TransactionState struct {
	// Reference is stored without the configured prefix. Use WithReference to set it
	// from a value that may already carry the prefix.
	Reference string

	Sender   Sender
	Shipping Shipping
	Items    []Item

	Payment      *Payment
	Subscription *Subscription

	// PreApprovalCode identifies the pre-approval charged by a pre-approval payment.
	PreApprovalCode string

	ExtraAmount     int64
	RedirectURL     string
	NotificationURL string
	AbandonURL      string
}

// WithReference returns a copy of the state holding ref with the template's prefix
// and suffix removed, so repeated sets never double-prefix.
func (s TransactionState) WithReference(tmpl ReferenceTemplate, ref string) TransactionState {
	s.Reference = tmpl.Strip(ref)
	return s
}

type Sender struct {
	Name     string
	Email    string
	CPF      string
	CNPJ     string
	AreaCode string
	Phone    string
}

func (s Sender) IsZero() bool {
	return s == Sender{}
}

type Shipping struct {
	Type       string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Country    string
	PostalCode string
}

func (s Shipping) IsZero() bool {
	return s == Shipping{}
}

type Item struct {
	ID           string
	Name         string
	Description  string
	Quantity     int
	Amount       int64
	Weight       int
	ShippingCost int64
}

type Payment struct {
	Amount int64
	// Currency defaults to the configured currency when empty.
	Currency string
	Method   PaymentMethod
}

type PaymentMethod struct {
	Type           string
	Installments   int
	Capture        *bool
	SoftDescriptor string
	Card           *Card
	Boleto         *Boleto
}

// IsBoleto reports whether the method requires a holder with a billing address.
func (m PaymentMethod) IsBoleto() bool {
	return strings.EqualFold(m.Type, PaymentMethodBoleto)
}

type Card struct {
	ID           string
	Encrypted    string
	Number       string
	ExpMonth     string
	ExpYear      string
	SecurityCode string
	HolderName   string
	Store        bool
}

type Boleto struct {
	DueDate          string
	InstructionLine1 string
	InstructionLine2 string
}

// Subscription drives the recurring-payment request. Exactly one of PlanID or
// PlanReferenceID should be set; the customer may be given by id, by reference id,
// or synthesized from the checkout data when both are empty.
type Subscription struct {
	PlanID              string
	PlanReferenceID     string
	CustomerID          string
	CustomerReferenceID string
	BestInvoiceDate     *InvoiceDate
	ReferenceID         string
}

type InvoiceDate struct {
	Day   int
	Month int
}
