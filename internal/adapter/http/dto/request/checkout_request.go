package request

import (
	"strings"

	"pagseguro_gateway/internal/domain/entities"
)

type SenderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	CNPJ     string `json:"cnpj"`
	AreaCode string `json:"area_code"`
	Phone    string `json:"phone"`
}

type ShippingRequest struct {
	Type       string `json:"type"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// ItemRequest amounts are in cents.
type ItemRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
	Amount       int64  `json:"amount" binding:"gte=0"`
	Weight       int    `json:"weight"`
	ShippingCost int64  `json:"shipping_cost"`
}

type CardRequest struct {
	ID           string `json:"id"`
	Encrypted    string `json:"encrypted"`
	Number       string `json:"number"`
	ExpMonth     string `json:"exp_month"`
	ExpYear      string `json:"exp_year"`
	SecurityCode string `json:"security_code"`
	HolderName   string `json:"holder_name"`
	Store        bool   `json:"store"`
}

type BoletoRequest struct {
	DueDate          string `json:"due_date"`
	InstructionLine1 string `json:"instruction_line_1"`
	InstructionLine2 string `json:"instruction_line_2"`
}

type PaymentMethodRequest struct {
	Type           string         `json:"type" binding:"required,oneof=CREDIT_CARD DEBIT_CARD BOLETO PIX credit_card debit_card boleto pix"`
	Installments   int            `json:"installments" binding:"gte=0"`
	Capture        *bool          `json:"capture"`
	SoftDescriptor string         `json:"soft_descriptor"`
	Card           *CardRequest   `json:"card"`
	Boleto         *BoletoRequest `json:"boleto"`
}

type PaymentRequest struct {
	Amount   int64                `json:"amount" binding:"gt=0"`
	Currency string               `json:"currency"`
	Method   PaymentMethodRequest `json:"method" binding:"required"`
}

// CheckoutRequest is the body of POST /v1/checkouts.
//
// `extra` is merged into the PagSeguro order as-is, after the built fields.
type CheckoutRequest struct {
	Reference       string           `json:"reference"`
	Sender          SenderRequest    `json:"sender"`
	Shipping        *ShippingRequest `json:"shipping"`
	Items           []ItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payment         *PaymentRequest  `json:"payment"`
	ExtraAmount     int64            `json:"extra_amount"`
	RedirectURL     string           `json:"redirect_url"`
	NotificationURL string           `json:"notification_url"`
	AbandonURL      string           `json:"abandon_url"`
	Extra           map[string]any   `json:"extra"`
}

func (r CheckoutRequest) ToState() entities.TransactionState {
	state := entities.TransactionState{
		Reference:       strings.TrimSpace(r.Reference),
		Sender:          entities.Sender(r.Sender),
		Items:           toItems(r.Items),
		ExtraAmount:     r.ExtraAmount,
		RedirectURL:     r.RedirectURL,
		NotificationURL: r.NotificationURL,
		AbandonURL:      r.AbandonURL,
	}
	if r.Shipping != nil {
		state.Shipping = entities.Shipping(*r.Shipping)
	}
	if r.Payment != nil {
		state.Payment = r.Payment.toPayment()
	}
	return state
}

func (p PaymentRequest) toPayment() *entities.Payment {
	m := p.Method
	method := entities.PaymentMethod{
		Type:           strings.ToUpper(m.Type),
		Installments:   m.Installments,
		Capture:        m.Capture,
		SoftDescriptor: m.SoftDescriptor,
	}
	if m.Card != nil {
		card := entities.Card(*m.Card)
		method.Card = &card
	}
	if m.Boleto != nil {
		boleto := entities.Boleto(*m.Boleto)
		method.Boleto = &boleto
	}
	return &entities.Payment{
		Amount:   p.Amount,
		Currency: strings.ToUpper(p.Currency),
		Method:   method,
	}
}

func toItems(in []ItemRequest) []entities.Item {
	items := make([]entities.Item, 0, len(in))
	for _, it := range in {
		items = append(items, entities.Item(it))
	}
	return items
}
