package billparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Notation is the way an amount was written on the bill.
type Notation int

const (
	// NotationCurrency is a "$"-marked amount such as "$1,400.00".
	NotationCurrency Notation = iota
	// NotationPlain is an unmarked amount such as "1,400.00".
	NotationPlain
	// NotationCommaDecimal is an OCR artifact such as "7,353,60" for 7353.60.
	NotationCommaDecimal
)

func (n Notation) String() string {
	switch n {
	case NotationCurrency:
		return "currency"
	case NotationPlain:
		return "plain"
	case NotationCommaDecimal:
		return "comma_decimal"
	}
	return "unknown"
}

// Amount is one monetary value found on a line.
type Amount struct {
	Value    decimal.Decimal
	Notation Notation
	Line     string
}

// gap matches any run of whitespace, including NBSP, \v and the other
// Unicode separators that PDF text layers emit between tokens.
const gap = `[\s\v\x1c-\x1f\x85\p{Z}]*`

var (
	currencyAmountRe = regexp.MustCompile(`\$` + gap + `([0-9]+(?:,[0-9]{3})*\.[0-9]{2})`)
	plainAmountRe    = regexp.MustCompile(`([0-9]+(?:,[0-9]{3})*\.[0-9]{2})`)
	commaDecimalRe   = regexp.MustCompile(`([0-9]+(?:,[0-9]{3})*),([0-9]{2})\b`)

	// anything at or above this is an account, zip or phone number
	amountCeiling = decimal.NewFromInt(1_000_000)
)

// ExtractAmounts returns the plausible monetary values on a line.
//
// With currencyOnly set only "$"-marked values are returned (possibly none).
// Otherwise "$"-marked values come first, followed by plain and comma-decimal
// values not already found with a "$", each family in left-to-right order.
func ExtractAmounts(line string, currencyOnly bool) []Amount {
	currency := matchAmounts(currencyAmountRe, line, NotationCurrency)
	if currencyOnly {
		return currency
	}

	plain := matchAmounts(plainAmountRe, line, NotationPlain)
	for _, m := range commaDecimalRe.FindAllStringSubmatch(line, -1) {
		v, ok := parseAmount(m[1] + "." + m[2])
		if ok && !containsValue(plain, v) {
			plain = append(plain, Amount{Value: v, Notation: NotationCommaDecimal, Line: line})
		}
	}

	all := make([]Amount, 0, len(currency)+len(plain))
	all = append(all, currency...)
	for _, a := range plain {
		if !containsValue(currency, a.Value) {
			all = append(all, a)
		}
	}
	return all
}

func matchAmounts(re *regexp.Regexp, line string, notation Notation) []Amount {
	var out []Amount
	for _, m := range re.FindAllStringSubmatch(line, -1) {
		if v, ok := parseAmount(m[1]); ok {
			out = append(out, Amount{Value: v, Notation: notation, Line: line})
		}
	}
	return out
}

// parseAmount drops thousands separators and applies the (0, 1e6) bounds.
func parseAmount(s string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	if !v.IsPositive() || !v.LessThan(amountCeiling) {
		return decimal.Zero, false
	}
	return v, true
}

func containsValue(amounts []Amount, v decimal.Decimal) bool {
	for _, a := range amounts {
		if a.Value.Equal(v) {
			return true
		}
	}
	return false
}

// maxValue returns the largest value, or zero for an empty slice.
func maxValue(amounts []Amount) decimal.Decimal {
	top := decimal.Zero
	for _, a := range amounts {
		if a.Value.GreaterThan(top) {
			top = a.Value
		}
	}
	return top
}
