package billparser

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	billedKeywords = []string{"total charges", "total amount", "total billed", "billed amount", "total lab charges"}
	owedKeywords   = []string{
		"amount due", "you owe", "amount you owe", "patient responsibility",
		"balance due", "pay this amount", "amount owed", "total due", "your balance",
		// "pay $780 now" phrasing
		"pay now", "pay $",
	}
	allowedKeywords     = []string{"allowed amount", "plan allowed", "eligible amount"}
	insurerPaidKeywords = []string{"insurance paid", "plan paid", "benefit paid", "insurance payment"}
)

// classifyAggregates reads the total/due/allowed/paid lines. Each slot keeps
// the largest amount proposed by any matching line. For the owed slot a
// "$"-marked figure beats any plain one regardless of size.
func classifyAggregates(doc *document, d *draft) {
	var billed, allowed, insurerPaid, owedCurrency, owedPlain decimal.Decimal

	for i, line := range doc.lines {
		vals := doc.amounts[i]
		if len(vals) == 0 {
			continue
		}
		lower := strings.ToLower(line)
		top := maxValue(vals)

		if containsAny(lower, billedKeywords) {
			billed = decimal.Max(billed, top)
		}
		if containsAny(lower, owedKeywords) {
			if marked := ExtractAmounts(line, true); len(marked) > 0 {
				owedCurrency = decimal.Max(owedCurrency, maxValue(marked))
			} else {
				owedPlain = decimal.Max(owedPlain, top)
			}
		}
		if containsAny(lower, allowedKeywords) {
			allowed = decimal.Max(allowed, top)
		}
		if containsAny(lower, insurerPaidKeywords) {
			insurerPaid = decimal.Max(insurerPaid, top)
		}
	}

	fill(&d.billed, billed)
	fill(&d.allowed, allowed)
	fill(&d.insurerPaid, insurerPaid)
	if owedCurrency.IsPositive() {
		fill(&d.printedOwe, owedCurrency)
	} else {
		fill(&d.printedOwe, owedPlain)
	}
}
