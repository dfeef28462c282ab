package billparser

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Issue texts reported on the summary
const (
	IssueBilledAboveAllowed = "Billed amount appears significantly higher than a typical allowed amount."
	IssueOweAboveExpected   = "Patient responsibility looks higher than expected for a typical coinsurance rate."
)

var (
	// most medical bills stay below this; larger figures are usually reference numbers
	poolCeiling = decimal.NewFromInt(50_000)
	// billed is at most this multiple of what the patient owes
	markupWindow = decimal.NewFromInt(5)

	allowedRatio      = decimal.RequireFromString("0.65")
	coinsuranceRate   = decimal.RequireFromString("0.2")
	significantMarkup = decimal.RequireFromString("1.5")
)

// pool returns every amount in the document below poolCeiling, in document order.
func (doc *document) pool() []decimal.Decimal {
	var out []decimal.Decimal
	for _, vals := range doc.amounts {
		for _, a := range vals {
			if a.Value.LessThan(poolCeiling) {
				out = append(out, a.Value)
			}
		}
	}
	return out
}

// applyFallbacks fills whatever keyword and structure passes left unset using
// the document-wide amount pool and the typical ratios.
func applyFallbacks(doc *document, d *draft) {
	pool := doc.pool()

	if len(pool) > 0 {
		if d.billed.IsZero() {
			if d.printedOwe.IsPositive() {
				d.billed = smallestInWindow(pool, d.printedOwe, d.printedOwe.Mul(markupWindow))
			} else {
				d.billed = decimal.Max(pool[0], pool[1:]...)
			}
		}
		if d.printedOwe.IsZero() {
			if len(pool) >= 2 {
				d.printedOwe = secondLargest(pool)
			} else {
				d.printedOwe = d.billed
			}
		}
	}

	if d.allowed.IsZero() && d.billed.IsPositive() {
		d.allowed = d.billed.Mul(allowedRatio).Round(2)
	}
	if d.insurerPaid.IsZero() && d.allowed.IsPositive() {
		d.insurerPaid = decimal.Max(decimal.Zero, d.allowed.Mul(decimal.NewFromInt(1).Sub(coinsuranceRate)))
	}
	fill(&d.printedOwe, d.billed)
}

// smallestInWindow picks the smallest pool value in [lo, hi], or lo when none fits.
func smallestInWindow(pool []decimal.Decimal, lo, hi decimal.Decimal) decimal.Decimal {
	best := decimal.Zero
	for _, v := range pool {
		if v.LessThan(lo) || v.GreaterThan(hi) {
			continue
		}
		if best.IsZero() || v.LessThan(best) {
			best = v
		}
	}
	if best.IsZero() {
		return lo
	}
	return best
}

// secondLargest expects at least two values. Duplicates count separately.
func secondLargest(pool []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(pool))
	copy(sorted, pool)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].GreaterThan(sorted[j]) })
	return sorted[1]
}

// deriveEstimates computes should-owe from the allowed amount (or the 65%
// estimate of it) at 20% coinsurance, the overcharge, and the issue list.
func deriveEstimates(_ *document, d *draft) {
	switch {
	case d.allowed.IsPositive() && d.billed.GreaterThan(d.allowed):
		d.shouldOwe = d.allowed.Mul(coinsuranceRate).Round(2)
	case d.billed.IsPositive():
		d.shouldOwe = d.billed.Mul(allowedRatio).Mul(coinsuranceRate).Round(2)
	default:
		d.shouldOwe = decimal.Zero
	}

	d.overcharge = decimal.Max(decimal.Zero, d.printedOwe.Round(2).Sub(d.shouldOwe))

	if d.allowed.IsPositive() && d.billed.GreaterThan(d.allowed.Mul(significantMarkup)) {
		d.issues = append(d.issues, IssueBilledAboveAllowed)
	}
	if d.overcharge.IsPositive() {
		d.issues = append(d.issues, IssueOweAboveExpected)
	}
}
