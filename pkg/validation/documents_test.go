package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator_Email(t *testing.T) {
	v := New(false)

	got, ok := v.Email(" a@b.com ")
	require.True(t, ok)
	require.Equal(t, "a@b.com", got)

	for _, bad := range []string{"", "   ", "not-an-email", "a@", "@b.com"} {
		_, ok := v.Email(bad)
		require.False(t, ok, bad)
	}
}

func TestValidator_Documents(t *testing.T) {
	cases := []struct {
		name   string
		strict bool
		cpf    string
		cpfOK  bool
		cnpj   string
		cnpjOK bool
	}{
		{name: "short digits accepted when lenient", cpf: "111", cpfOK: true, cnpj: "22", cnpjOK: true},
		{name: "formatted", cpf: "529.982.247-25", cpfOK: true, cnpj: "11.222.333/0001-81", cnpjOK: true},
		{name: "empty", cpf: "", cnpj: ""},
		{name: "letters", cpf: "12a", cnpj: "x"},
		{name: "too long", cpf: "123456789012", cnpj: "123456789012345"},
		{name: "strict valid", strict: true, cpf: "52998224725", cpfOK: true, cnpj: "11222333000181", cnpjOK: true},
		{name: "strict short", strict: true, cpf: "111", cnpj: "22"},
		{name: "strict wrong digits", strict: true, cpf: "52998224724", cnpj: "11222333000182"},
		{name: "strict repeated", strict: true, cpf: "11111111111", cnpj: "00000000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(tc.strict)

			got, ok := v.CPF(tc.cpf)
			require.Equal(t, tc.cpfOK, ok)
			if ok {
				require.Equal(t, tc.cpf, got)
			}

			got, ok = v.CNPJ(tc.cnpj)
			require.Equal(t, tc.cnpjOK, ok)
			if ok {
				require.Equal(t, tc.cnpj, got)
			}
		})
	}
}

func TestValidator_TaxID(t *testing.T) {
	v := New(false)

	got, ok := v.TaxID("", "111")
	require.True(t, ok)
	require.Equal(t, "111", got)

	got, ok = v.TaxID("22", "111")
	require.True(t, ok)
	require.Equal(t, "22", got)

	got, ok = v.TaxID("bad", "111")
	require.True(t, ok)
	require.Equal(t, "111", got)

	_, ok = v.TaxID("", "")
	require.False(t, ok)
}

func TestValidator_ZeroValue(t *testing.T) {
	var v Validator
	_, ok := v.Email("a@b.com")
	require.True(t, ok)
	require.Nil(t, v.v)
}

func TestValidator_ZeroValueConcurrent(t *testing.T) {
	var v Validator
	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = v.Email("a@b.com")
		}(i)
	}
	wg.Wait()

	for _, ok := range results {
		require.True(t, ok)
	}
}
