package pagseguro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	prod := NewConfig(false)
	sandbox := NewConfig(true)

	require.NoError(t, prod.Validate())
	require.NoError(t, sandbox.Validate())
	require.Contains(t, prod.OrderURL, "https://api.pagseguro.com")
	require.Contains(t, sandbox.OrderURL, "sandbox")
	require.Equal(t, "BRL", prod.Currency)
	require.True(t, prod.UseShipping)
	require.Equal(t, "%s", prod.ReferencePrefix.String())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.PlanURL = "" }},
		{"relative url", func(c *Config) { c.OrderURL = "/orders" }},
		{"template without placeholder", func(c *Config) { c.TransactionURL = "https://x/transactions" }},
		{"template with two placeholders", func(c *Config) { c.NotificationURL = "https://x/%s/%s" }},
		{"reference prefix", func(c *Config) { c.ReferencePrefix = "ORD-" }},
		{"currency", func(c *Config) { c.Currency = "REAL" }},
		{"negative timeout", func(c *Config) { c.Timeout = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(false)
			tt.mutate(&cfg)

			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_PaymentLink(t *testing.T) {
	cfg := NewConfig(false)

	require.Equal(t, "https://api.pagseguro.com/v3/checkout/payment.html?code=ABC", cfg.PaymentLink("ABC"))
}
