package ingestion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"currency with thousands", "R$ 1.234,56", "1234.56", true},
		{"comma decimal", "645,00", "645.00", true},
		{"currency no space", "R$645,00", "645.00", true},
		{"raw numeric cell", "645.5", "645.5", true},
		{"raw integer cell", "645", "645", true},
		{"empty", "", "", false},
		{"dash placeholder", "-", "", false},
		{"stray text", "isento", "", false},
		{"zero is absent", "0,00", "", false},
		{"negative is absent", "-10,00", "", false},
		{"whitespace only", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				want, err := decimal.NewFromString(tt.want)
				require.NoError(t, err)
				assert.True(t, want.Equal(got), "want %s got %s", want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		year int
		want string
		ok   bool
	}{
		{"day and month abbreviation", "09/dez", 2024, "2024-12-09", true},
		{"full month name", "9/dezembro", 2024, "2024-12-09", true},
		{"day slash month", "5/3", 2024, "2024-03-05", true},
		{"two digit year", "5/3/23", 2024, "2023-03-05", true},
		{"four digit year", "05/03/2022", 2024, "2022-03-05", true},
		{"dash separator", "15-jan", 2025, "2025-01-15", true},
		{"backslash separator", `7\11`, 2025, "2025-11-07", true},
		{"uppercase abbreviation", "09/DEZ", 2024, "2024-12-09", true},
		{"empty", "", 2024, "", false},
		{"stray text", "pago", 2024, "", false},
		{"unknown month name", "10/xyz", 2024, "", false},
		{"month out of range", "10/13", 2024, "", false},
		{"impossible day", "31/fev", 2024, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in, tt.year)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(time.DateOnly))
			}
		})
	}
}
