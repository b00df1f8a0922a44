package payload

import (
	"pagseguro_gateway/internal/domain/entities"
)

// CheckoutPayload is the typed result of reading a TransactionState for the Orders
// API. The checkout body and the subscription body are both rendered from it, so the
// charge holder and the subscriber card see the same address and card data.
type CheckoutPayload struct {
	// Reference is the prefixed, wire-visible reference.
	Reference       string
	Customer        RequestMap
	ShippingAddress RequestMap
	ExtraAmount     int64
	RedirectURL     string
	NotificationURL string
	AbandonURL      string
	Items           []RequestMap
	Charge          RequestMap
	ChargeAmount    RequestMap
	Card            *entities.Card

	abandonURLKey string
}

// NewCheckoutPayload reads state. A BOLETO charge without a shipping address fails
// with entities.ErrBoletoWithoutShipping, since the holder address comes from it.
func NewCheckoutPayload(state entities.TransactionState, opts Options) (CheckoutPayload, error) {
	val := opts.validator()
	p := CheckoutPayload{
		ExtraAmount:     state.ExtraAmount,
		RedirectURL:     state.RedirectURL,
		NotificationURL: state.NotificationURL,
		AbandonURL:      state.AbandonURL,
		abandonURLKey:   opts.abandonURLKey(),
	}

	if state.Reference != "" {
		p.Reference = opts.ReferencePrefix.Format(state.Reference)
	}

	sender := state.Sender
	if !sender.IsZero() {
		p.Customer = RequestMap{
			"name":   optional(sender.Name),
			"email":  nullable(val.Email(sender.Email)),
			"tax_id": nullable(val.TaxID(sender.CNPJ, sender.CPF)),
			"phones": []RequestMap{{
				"type":    phoneTypeMobile,
				"country": phoneCountry,
				"area":    optional(sender.AreaCode),
				"number":  optional(sender.Phone),
			}},
		}
	}

	if opts.UseShipping && !state.Shipping.IsZero() {
		p.ShippingAddress = shippingAddress(state.Shipping)
	}

	if len(state.Items) > 0 {
		p.Items = make([]RequestMap, 0, len(state.Items))
		for _, item := range state.Items {
			p.Items = append(p.Items, RequestMap{
				"reference_id": optional(item.ID),
				"name":         optional(item.Name),
				"quantity":     item.Quantity,
				"unit_amount":  item.Amount,
			})
		}
	}

	if state.Payment != nil {
		payment := state.Payment
		method := payment.Method
		if method.IsBoleto() && p.ShippingAddress == nil {
			return CheckoutPayload{}, entities.ErrBoletoWithoutShipping
		}

		currency := payment.Currency
		if currency == "" {
			currency = opts.currency()
		}
		p.ChargeAmount = RequestMap{"value": payment.Amount, "currency": currency}
		p.Card = method.Card

		pm := paymentMethod(method)
		if method.IsBoleto() {
			pm["holder"] = RequestMap{
				"name":    optional(sender.Name),
				"tax_id":  nullable(val.TaxID(sender.CNPJ, sender.CPF)),
				"email":   optional(sender.Email),
				"address": p.ShippingAddress,
			}
		}
		p.Charge = RequestMap{
			"amount":         p.ChargeAmount,
			"payment_method": pm,
		}
	}

	return p, nil
}

// Map renders the checkout body. extra is applied first; computed fields win.
func (p CheckoutPayload) Map(extra RequestMap) RequestMap {
	params := make(RequestMap, len(extra)+10)
	for k, v := range extra {
		params[k] = v
	}

	if p.Reference != "" {
		params["reference_id"] = p.Reference
		params["reference"] = p.Reference
	}
	if p.Customer != nil {
		params["customer"] = p.Customer
	}
	if p.ShippingAddress != nil {
		params["shipping"] = RequestMap{"address": p.ShippingAddress}
	}
	if p.ExtraAmount != 0 {
		params["extraAmount"] = p.ExtraAmount
	}
	if p.RedirectURL != "" {
		params["redirectURL"] = p.RedirectURL
	}
	if p.NotificationURL != "" {
		params["notification_urls"] = []string{p.NotificationURL}
	}
	if p.AbandonURL != "" {
		key := p.abandonURLKey
		if key == "" {
			key = LegacyAbandonURLKey
		}
		params[key] = []string{p.AbandonURL}
	}
	if len(p.Items) > 0 {
		params["items"] = p.Items
	}
	if p.Charge != nil {
		params["charges"] = []RequestMap{p.Charge}
	}

	return Prune(params)
}

// BuildCheckout renders the Orders API body for state.
func BuildCheckout(state entities.TransactionState, extra RequestMap, opts Options) (RequestMap, error) {
	p, err := NewCheckoutPayload(state, opts)
	if err != nil {
		return nil, err
	}
	return p.Map(extra), nil
}

func shippingAddress(s entities.Shipping) RequestMap {
	country := s.Country
	if country == "" {
		country = defaultCountry
	}
	return RequestMap{
		"shippingType": optional(s.Type),
		"street":       optional(s.Street),
		"number":       optional(s.Number),
		"complement":   s.Complement,
		"locality":     optional(s.District),
		"city":         optional(s.City),
		"region_code":  optional(s.State),
		"country":      country,
		"postal_code":  optional(s.PostalCode),
	}
}

func paymentMethod(m entities.PaymentMethod) RequestMap {
	pm := RequestMap{
		"type":            m.Type,
		"installments":    m.Installments,
		"soft_descriptor": m.SoftDescriptor,
	}
	if m.Capture != nil {
		pm["capture"] = *m.Capture
	}
	if m.Card != nil {
		pm["card"] = card(*m.Card)
	}
	if b := m.Boleto; b != nil {
		pm["boleto"] = Prune(RequestMap{
			"due_date": b.DueDate,
			"instruction_lines": Prune(RequestMap{
				"line_1": b.InstructionLine1,
				"line_2": b.InstructionLine2,
			}),
		})
	}
	return Prune(pm)
}

func card(c entities.Card) RequestMap {
	m := RequestMap{
		"id":            c.ID,
		"encrypted":     c.Encrypted,
		"number":        c.Number,
		"exp_month":     c.ExpMonth,
		"exp_year":      c.ExpYear,
		"security_code": c.SecurityCode,
		"store":         c.Store,
	}
	if c.HolderName != "" {
		m["holder"] = RequestMap{"name": c.HolderName}
	}
	return Prune(m)
}

// optional maps an empty string to nil, the way an absent field is sent.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
