package payload

import (
	"testing"

	"pagseguro_gateway/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{UseShipping: true, ReferencePrefix: "%s", Currency: "BRL"}
}

func sampleShipping() entities.Shipping {
	return entities.Shipping{
		Type:       "1",
		Street:     "Av. Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "Sao Paulo",
		State:      "SP",
		PostalCode: "01310100",
	}
}

func TestBuildCheckout_TaxID(t *testing.T) {
	t.Run("cpf when cnpj is empty", func(t *testing.T) {
		state := entities.TransactionState{Sender: entities.Sender{Name: "A", Email: "a@b.com", CPF: "111"}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		customer := got["customer"].(RequestMap)
		require.Equal(t, "111", customer["tax_id"])
		require.Equal(t, "A", customer["name"])
		require.Equal(t, "a@b.com", customer["email"])
	})

	t.Run("cnpj wins", func(t *testing.T) {
		state := entities.TransactionState{Sender: entities.Sender{CPF: "", CNPJ: "22"}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		require.Equal(t, "22", got["customer"].(RequestMap)["tax_id"])
	})

	t.Run("invalid values become null", func(t *testing.T) {
		state := entities.TransactionState{Sender: entities.Sender{Name: "A", Email: "nope", CPF: "abc"}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		customer := got["customer"].(RequestMap)
		require.Contains(t, customer, "email")
		require.Nil(t, customer["email"])
		require.Nil(t, customer["tax_id"])
	})

	t.Run("phones", func(t *testing.T) {
		state := entities.TransactionState{Sender: entities.Sender{Name: "A", AreaCode: "11", Phone: "999999999"}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		require.Equal(t, []RequestMap{{
			"type":    "MOBILE",
			"country": "55",
			"area":    "11",
			"number":  "999999999",
		}}, got["customer"].(RequestMap)["phones"])
	})

	t.Run("no sender no customer", func(t *testing.T) {
		got, err := BuildCheckout(entities.TransactionState{}, nil, defaultOptions())

		require.NoError(t, err)
		require.NotContains(t, got, "customer")
		require.Empty(t, got)
	})
}

func TestBuildCheckout_Items(t *testing.T) {
	state := entities.TransactionState{Items: []entities.Item{
		{ID: "1", Name: "x", Quantity: 2, Amount: 500},
		{ID: "2", Name: "y", Quantity: 1, Amount: 150, Description: "ignored here"},
		{ID: "3", Name: "z", Quantity: 5, Amount: 10},
	}}

	got, err := BuildCheckout(state, nil, defaultOptions())

	require.NoError(t, err)
	require.Equal(t, []RequestMap{
		{"reference_id": "1", "name": "x", "quantity": 2, "unit_amount": int64(500)},
		{"reference_id": "2", "name": "y", "quantity": 1, "unit_amount": int64(150)},
		{"reference_id": "3", "name": "z", "quantity": 5, "unit_amount": int64(10)},
	}, got["items"])
}

func TestBuildCheckout_Reference(t *testing.T) {
	opts := defaultOptions()
	opts.ReferencePrefix = "ORD-%s"
	state := entities.TransactionState{}.WithReference(opts.ReferencePrefix, "abc")

	got, err := BuildCheckout(state, nil, opts)
	require.NoError(t, err)
	require.Equal(t, "ORD-abc", got["reference_id"])
	require.Equal(t, "ORD-abc", got["reference"])

	state = state.WithReference(opts.ReferencePrefix, "ORD-abc")
	require.Equal(t, "abc", state.Reference)

	got, err = BuildCheckout(state, nil, opts)
	require.NoError(t, err)
	require.Equal(t, "ORD-abc", got["reference_id"])
}

func TestBuildCheckout_Shipping(t *testing.T) {
	state := entities.TransactionState{Shipping: sampleShipping()}

	t.Run("renamed fields and defaults", func(t *testing.T) {
		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		require.Equal(t, RequestMap{"address": RequestMap{
			"shippingType": "1",
			"street":       "Av. Paulista",
			"number":       "1000",
			"complement":   "",
			"locality":     "Bela Vista",
			"city":         "Sao Paulo",
			"region_code":  "SP",
			"country":      "BRA",
			"postal_code":  "01310100",
		}}, got["shipping"])
	})

	t.Run("explicit country and complement", func(t *testing.T) {
		s := state
		s.Shipping.Country = "ARG"
		s.Shipping.Complement = "apto 12"

		got, err := BuildCheckout(s, nil, defaultOptions())

		require.NoError(t, err)
		address := got["shipping"].(RequestMap)["address"].(RequestMap)
		require.Equal(t, "ARG", address["country"])
		require.Equal(t, "apto 12", address["complement"])
	})

	t.Run("disabled by configuration", func(t *testing.T) {
		opts := defaultOptions()
		opts.UseShipping = false

		got, err := BuildCheckout(state, nil, opts)

		require.NoError(t, err)
		require.NotContains(t, got, "shipping")
	})

	t.Run("empty shipping", func(t *testing.T) {
		got, err := BuildCheckout(entities.TransactionState{}, nil, defaultOptions())

		require.NoError(t, err)
		require.NotContains(t, got, "shipping")
	})
}

func TestBuildCheckout_URLsAndExtras(t *testing.T) {
	state := entities.TransactionState{
		ExtraAmount:     -150,
		RedirectURL:     "https://shop.test/return",
		NotificationURL: "https://shop.test/notify",
		AbandonURL:      "https://shop.test/abandon",
	}

	t.Run("legacy abandon key by default", func(t *testing.T) {
		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		require.Equal(t, int64(-150), got["extraAmount"])
		require.Equal(t, "https://shop.test/return", got["redirectURL"])
		require.Equal(t, []string{"https://shop.test/notify"}, got["notification_urls"])
		require.Equal(t, []string{"https://shop.test/abandon"}, got["notifcation_urls"])
	})

	t.Run("configured abandon key", func(t *testing.T) {
		opts := defaultOptions()
		opts.AbandonURLKey = "abandon_urls"

		got, err := BuildCheckout(state, nil, opts)

		require.NoError(t, err)
		require.NotContains(t, got, "notifcation_urls")
		require.Equal(t, []string{"https://shop.test/abandon"}, got["abandon_urls"])
	})
}

func TestBuildCheckout_ExtraFields(t *testing.T) {
	opts := defaultOptions()
	opts.ReferencePrefix = "ORD-%s"
	state := entities.TransactionState{Reference: "abc"}
	extra := RequestMap{
		"reference_id": "caller",
		"custom":       "kept",
		"empty":        "",
		"flag":         false,
	}

	got, err := BuildCheckout(state, extra, opts)

	require.NoError(t, err)
	require.Equal(t, "ORD-abc", got["reference_id"])
	require.Equal(t, "kept", got["custom"])
	require.Equal(t, false, got["flag"])
	require.NotContains(t, got, "empty")
	require.Equal(t, "caller", extra["reference_id"], "extra must not be modified")
}

func TestBuildCheckout_Charges(t *testing.T) {
	capture := false

	t.Run("credit card", func(t *testing.T) {
		state := entities.TransactionState{Payment: &entities.Payment{
			Amount: 1000,
			Method: entities.PaymentMethod{
				Type:         entities.PaymentMethodCreditCard,
				Installments: 1,
				Capture:      &capture,
				Card:         &entities.Card{Encrypted: "enc", SecurityCode: "123", HolderName: "A"},
			},
		}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		require.Equal(t, []RequestMap{{
			"amount": RequestMap{"value": int64(1000), "currency": "BRL"},
			"payment_method": RequestMap{
				"type":         "CREDIT_CARD",
				"installments": 1,
				"capture":      false,
				"card": RequestMap{
					"encrypted":     "enc",
					"security_code": "123",
					"store":         false,
					"holder":        RequestMap{"name": "A"},
				},
			},
		}}, got["charges"])
	})

	t.Run("payment currency overrides configuration", func(t *testing.T) {
		state := entities.TransactionState{Payment: &entities.Payment{Amount: 5, Currency: "USD", Method: entities.PaymentMethod{Type: "PIX"}}}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		charge := got["charges"].([]RequestMap)[0]
		require.Equal(t, RequestMap{"value": int64(5), "currency": "USD"}, charge["amount"])
	})

	t.Run("boleto holder uses the shipping address", func(t *testing.T) {
		state := entities.TransactionState{
			Sender:   entities.Sender{Name: "A", Email: "a@b.com", CPF: "111"},
			Shipping: sampleShipping(),
			Payment: &entities.Payment{
				Amount: 2500,
				Method: entities.PaymentMethod{
					Type:   entities.PaymentMethodBoleto,
					Boleto: &entities.Boleto{DueDate: "2024-12-31", InstructionLine1: "Pagar ate o vencimento"},
				},
			},
		}

		got, err := BuildCheckout(state, nil, defaultOptions())

		require.NoError(t, err)
		pm := got["charges"].([]RequestMap)[0]["payment_method"].(RequestMap)
		holder := pm["holder"].(RequestMap)
		require.Equal(t, "A", holder["name"])
		require.Equal(t, "111", holder["tax_id"])
		require.Equal(t, "a@b.com", holder["email"])
		require.Equal(t, got["shipping"].(RequestMap)["address"], holder["address"])
		require.Equal(t, RequestMap{
			"due_date":          "2024-12-31",
			"instruction_lines": RequestMap{"line_1": "Pagar ate o vencimento"},
		}, pm["boleto"])
	})

	t.Run("boleto without shipping is rejected", func(t *testing.T) {
		state := entities.TransactionState{
			Sender:  entities.Sender{Name: "A"},
			Payment: &entities.Payment{Amount: 2500, Method: entities.PaymentMethod{Type: "boleto"}},
		}

		_, err := BuildCheckout(state, nil, defaultOptions())

		require.ErrorIs(t, err, entities.ErrBoletoWithoutShipping)
	})

	t.Run("boleto with shipping disabled is rejected", func(t *testing.T) {
		opts := defaultOptions()
		opts.UseShipping = false
		state := entities.TransactionState{
			Shipping: sampleShipping(),
			Payment:  &entities.Payment{Amount: 2500, Method: entities.PaymentMethod{Type: entities.PaymentMethodBoleto}},
		}

		_, err := BuildCheckout(state, nil, opts)

		require.ErrorIs(t, err, entities.ErrBoletoWithoutShipping)
	})
}

func TestNewCheckoutPayload_KeepsCard(t *testing.T) {
	c := &entities.Card{Encrypted: "enc", SecurityCode: "321"}
	state := entities.TransactionState{Payment: &entities.Payment{Amount: 10, Method: entities.PaymentMethod{Type: "CREDIT_CARD", Card: c}}}

	p, err := NewCheckoutPayload(state, Options{})

	require.NoError(t, err)
	require.Same(t, c, p.Card)
	require.Equal(t, RequestMap{"value": int64(10), "currency": "BRL"}, p.ChargeAmount)
}
