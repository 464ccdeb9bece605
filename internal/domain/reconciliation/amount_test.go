package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"plain dot decimal", "750.00", 75000},
		{"plain comma decimal", "750,00", 75000},
		{"european grouping", "1.234,56", 123456},
		{"us grouping", "1,234.56", 123456},
		{"surrounding whitespace", " 750.00 ", 75000},
		{"currency symbol prefix", "€750.00", 75000},
		{"currency code suffix", "750.00 EUR", 75000},
		{"integer", "750", 75000},
		{"lone comma thousands", "1,234", 123400},
		{"lone comma short fraction", "12,5", 1250},
		{"multiple thousands groups", "1.234.567,89", 123456789},
		{"negative european", "-1.234,56", -123456},
		{"negative comma decimal", "-750,00", -75000},
		{"sub-cent rounds", "0.005", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountToCents(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountToCents_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no digits", "EUR"},
		{"separators only", ".,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmountToCents(tt.raw)
			assert.Error(t, err)
		})
	}
}
