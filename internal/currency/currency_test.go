package currency_test

import (
	"testing"

	"github.com/cavalaria/backend/internal/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Plain", "1234,56", "1234.56", false},
		{"With symbol", "R$ 1.234,56", "1234.56", false},
		{"Thousands only", "R$ 100.000", "100000", false},
		{"No fraction", "R$ 42", "42", false},
		{"Whitespace", "  R$  9.999,99 ", "9999.99", false},
		{"Empty", "", "", true},
		{"No digits", "R$ --", "", true},
		{"Two decimal separators", "1,2,3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := currency.ParseBRL(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, currency.ErrInvalidAmount)
				return
			}

			assert.Nil(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", amount, tt.want)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1.234,50"},
		{"100000", "R$ 100.000,00"},
		{"-42.07", "-R$ 42,07"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.FormatBRL(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestCentsToDecimal(t *testing.T) {
	assert.True(t, currency.CentsToDecimal(10000000).Equal(decimal.RequireFromString("100000")))
	assert.True(t, currency.CentsToDecimal(101).Equal(decimal.RequireFromString("1.01")))
}
