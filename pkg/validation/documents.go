// Package validation checks payer identity fields before they are sent to PagSeguro.
//
// Invalid values are reported through the boolean result, never as errors: request
// builders emit null for them.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

// Validator checks e-mail, CPF and CNPJ syntax. In Strict mode CPF and CNPJ must
// also have the full length and valid check digits.
type Validator struct {
	Strict bool
	v      *validator.Validate
}

func New(strict bool) *Validator {
	return &Validator{Strict: strict, v: validator.New()}
}

func (val *Validator) Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if err := val.validate().Var(s, "email"); err != nil {
		return "", false
	}
	return s, true
}

func (val *Validator) CPF(s string) (string, bool) {
	s = strings.TrimSpace(s)
	digits, ok := onlyDigits(s, ".-")
	if !ok || len(digits) > cpfLength {
		return "", false
	}
	if val.Strict && !validCPFDigits(digits) {
		return "", false
	}
	return s, true
}

func (val *Validator) CNPJ(s string) (string, bool) {
	s = strings.TrimSpace(s)
	digits, ok := onlyDigits(s, ".-/")
	if !ok || len(digits) > cnpjLength {
		return "", false
	}
	if val.Strict && !validCNPJDigits(digits) {
		return "", false
	}
	return s, true
}

// TaxID resolves the payer document: the CNPJ when valid, else the CPF when valid.
func (val *Validator) TaxID(cnpj, cpf string) (string, bool) {
	if v, ok := val.CNPJ(cnpj); ok {
		return v, true
	}
	return val.CPF(cpf)
}

// sharedValidate serves zero-value Validators; validator.Validate is safe for
// concurrent use once built.
var sharedValidate = validator.New()

func (val *Validator) validate() *validator.Validate {
	if val.v == nil {
		return sharedValidate
	}
	return val.v
}

func onlyDigits(s, separators string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune(separators, r):
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

func validCPFDigits(d string) bool {
	if len(d) != cpfLength || allSame(d) {
		return false
	}
	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

func checkDigit(d string, weight int) byte {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * (weight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func validCNPJDigits(d string) bool {
	if len(d) != cnpjLength || allSame(d) {
		return false
	}
	return weightedDigit(d[:12], cnpjFirstWeights) == d[12] && weightedDigit(d[:13], cnpjSecondWeights) == d[13]
}

func weightedDigit(d string, weights []int) byte {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

func allSame(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}
