package billparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func values(amounts []Amount) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.Value.StringFixed(2)
	}
	return out
}

func TestExtractAmounts(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"currency with thousands", "Total Charges $1,400.00", []string{"1400.00"}},
		{"currency with space", "Pay $ 780.00 today", []string{"780.00"}},
		{"plain columns", "1400.00 900.00 620.00 180.00", []string{"1400.00", "900.00", "620.00", "180.00"}},
		{"currency first then plain", "99.50 then $1,400.00 and 1,400.00", []string{"1400.00", "99.50"}},
		{"comma as decimal", "Balance 7,353,60", []string{"7353.60"}},
		{"comma value already plain", "12.50 12,50", []string{"12.50"}},
		{"plain duplicates kept", "100.00 100.00", []string{"100.00", "100.00"}},
		{"zero dropped", "Adjustments 0.00", []string{}},
		{"above ceiling dropped", "Account 1,234,567.00", []string{}},
		{"integers are not amounts", "Patient Responsibility 300", []string{}},
		{"currency with nbsp", "Pay $\u00a0250.00 now", []string{"250.00"}},
		{"currency with narrow nbsp", "Due $\u202f1,250.00", []string{"1250.00"}},
		{"fullwidth digits are not amounts", "Total \uff11\uff12.\uff15\uff10", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, values(ExtractAmounts(tt.line, false)))
		})
	}
}

func TestExtractAmountsCurrencyOnly(t *testing.T) {
	got := ExtractAmounts("Pay $250.00 now, plan paid 300.00", true)
	assert.Equal(t, []string{"250.00"}, values(got))
	assert.Equal(t, NotationCurrency, got[0].Notation)

	assert.Empty(t, ExtractAmounts("Patient Responsibility 300.00", true))
}

func TestExtractAmountsCurrencyOnlyUnicodeSpace(t *testing.T) {
	for _, line := range []string{"Pay $\u00a0250.00", "Pay $\v250.00", "Pay $\u2009\u00a0250.00"} {
		got := ExtractAmounts(line, true)
		assert.Equal(t, []string{"250.00"}, values(got), line)
	}
}

func TestExtractAmountsNotation(t *testing.T) {
	got := ExtractAmounts("$10.00 20.00 3,000,50", false)

	assert.Len(t, got, 3)
	assert.Equal(t, NotationCurrency, got[0].Notation)
	assert.Equal(t, NotationPlain, got[1].Notation)
	assert.Equal(t, NotationCommaDecimal, got[2].Notation)
	assert.Equal(t, "comma_decimal", got[2].Notation.String())
	assert.True(t, got[2].Value.Equal(decimal.RequireFromString("3000.50")))
	assert.Equal(t, "$10.00 20.00 3,000,50", got[0].Line)
}
