package payload

import (
	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/pkg/validation"
)

// LegacyAbandonURLKey is the misspelled key PagSeguro receives abandoned-cart URLs
// under. It is kept as the default for wire compatibility.
const LegacyAbandonURLKey = "notifcation_urls"

const (
	defaultCurrency = "BRL"
	defaultCountry  = "BRA"
	phoneCountry    = "55"
	phoneTypeMobile = "MOBILE"
)

// Options carries the configuration the builders read.
type Options struct {
	UseShipping     bool
	ReferencePrefix entities.ReferenceTemplate
	Currency        string
	// AbandonURLKey overrides LegacyAbandonURLKey when set.
	AbandonURLKey string
	Validator     *validation.Validator
}

func (o Options) currency() string {
	if o.Currency == "" {
		return defaultCurrency
	}
	return o.Currency
}

func (o Options) abandonURLKey() string {
	if o.AbandonURLKey == "" {
		return LegacyAbandonURLKey
	}
	return o.AbandonURLKey
}

func (o Options) validator() *validation.Validator {
	if o.Validator == nil {
		return validation.New(false)
	}
	return o.Validator
}

// nullable turns a validator result into a wire value: the string, or nil.
func nullable(v string, ok bool) any {
	if !ok {
		return nil
	}
	return v
}
