package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "local", cfg.AppEnv)
	require.Equal(t, 8080, cfg.HTTPPort)
	require.True(t, cfg.PagSeguro.Sandbox)
	require.True(t, cfg.PagSeguro.UseShipping)
	require.Equal(t, "BRL", cfg.PagSeguro.Currency)
	require.Equal(t, 30*time.Second, cfg.PagSeguro.Timeout)
	require.Equal(t, "checkouts", cfg.CheckoutsTable)

	ps := cfg.PagSeguroConfig()
	require.NoError(t, ps.Validate())
	require.Equal(t, "%s", ps.ReferencePrefix.String())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PAGSEGURO_TOKEN", "tok")
	t.Setenv("PAGSEGURO_SANDBOX", "false")
	t.Setenv("PAGSEGURO_REFERENCE_PREFIX", "ORD-")
	t.Setenv("PAGSEGURO_USE_SHIPPING", "false")
	t.Setenv("PAGSEGURO_CURRENCY", "usd")
	t.Setenv("PAGSEGURO_STRICT_TAX_ID", "true")
	t.Setenv("PAGSEGURO_ABANDON_URL_KEY", "abandon_urls")
	t.Setenv("PAGSEGURO_TIMEOUT", "5s")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.HTTPPort)
	require.Equal(t, "tok", cfg.PagSeguro.Token)

	ps := cfg.PagSeguroConfig()
	require.False(t, ps.Sandbox)
	require.False(t, ps.UseShipping)
	require.True(t, ps.StrictTaxID)
	require.Equal(t, "USD", ps.Currency)
	require.Equal(t, "ORD-%s", ps.ReferencePrefix.String())
	require.Equal(t, "abandon_urls", ps.AbandonURLKey)
	require.Equal(t, 5*time.Second, ps.Timeout)
	require.Equal(t, "http://localhost:8000", cfg.DynamoDB().Endpoint)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load()

	require.Error(t, err)
}
