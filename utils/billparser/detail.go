package billparser

import "regexp"

var codeTokenRe = regexp.MustCompile(`\b\d{4,5}\b`)

// inferDetailLine maps the columns of the first itemized line, one that
// carries a date, a 4-5 digit code and at least two amounts. Columns are
// assumed to read [charge, ..., allowed, plan paid, you owe].
func inferDetailLine(doc *document, d *draft) {
	for i, line := range doc.lines {
		vals := doc.amounts[i]
		if len(vals) < 2 || !dateRe.MatchString(line) || !codeTokenRe.MatchString(line) {
			continue
		}

		fill(&d.billed, maxValue(vals))

		n := len(vals)
		switch {
		case n >= 4:
			fill(&d.printedOwe, vals[n-1].Value)
			fill(&d.insurerPaid, vals[n-2].Value)
			fill(&d.allowed, vals[n-3].Value)
		case n == 3:
			fill(&d.printedOwe, vals[n-1].Value)
			fill(&d.insurerPaid, vals[n-2].Value)
		default:
			fill(&d.printedOwe, vals[n-1].Value)
		}
		return
	}
}
