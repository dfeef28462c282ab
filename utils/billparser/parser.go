// Package billparser turns the OCR or PDF text of a medical bill into a
// dto.BillSummary.
//
// Extraction is a fixed sequence of passes over one document. The first pass
// to set a field wins; every later pass only fills fields that are still zero,
// and the final pass derives should-owe and the overcharge estimate. The parser
// keeps no state between calls and is safe for concurrent use.
package billparser

import (
	"strings"

	"github.com/YuxiangJiangCT/billassistant/dto"
	"github.com/shopspring/decimal"
)

// Defaults for fields the passes could not pin down
const (
	UnknownProvider  = "Unknown provider"
	UnknownDate      = "Unknown date"
	UnknownProcedure = "Unknown procedure"
)

// document is the read-only view every pass works on.
type document struct {
	text    string
	lines   []string
	amounts [][]Amount // per line, all notations
}

func newDocument(text string) *document {
	lines := SplitLines(text)
	amounts := make([][]Amount, len(lines))
	for i, line := range lines {
		amounts[i] = ExtractAmounts(line, false)
	}
	return &document{text: text, lines: lines, amounts: amounts}
}

// draft is the summary under construction. A zero amount means unset.
type draft struct {
	provider    string
	serviceDate string
	procedure   string

	billed      decimal.Decimal
	allowed     decimal.Decimal
	insurerPaid decimal.Decimal
	printedOwe  decimal.Decimal
	shouldOwe   decimal.Decimal
	overcharge  decimal.Decimal

	issues []string
}

type pass func(doc *document, d *draft)

var passes = []pass{
	spotFields,
	classifyAggregates,
	inferDetailLine,
	applyFallbacks,
	deriveEstimates,
}

// Parse decodes bill text. Empty or whitespace-only text yields
// dto.ErrNoTextExtracted instead of a zero-filled summary.
func Parse(text string) (dto.BillSummary, error) {
	if strings.TrimSpace(text) == "" {
		return dto.BillSummary{}, dto.ErrNoTextExtracted
	}
	return Decode(text), nil
}

// Decode runs every pass over text and returns the summary. It never fails;
// fields without signal fall back to estimates or defaults.
func Decode(text string) dto.BillSummary {
	doc := newDocument(text)
	d := &draft{}
	for _, p := range passes {
		p(doc, d)
	}
	return d.summary(text)
}

func spotFields(doc *document, d *draft) {
	d.provider = SpotProvider(doc.lines)
	d.serviceDate = SpotServiceDate(doc.lines)
	d.procedure = SpotProcedure(doc.text, doc.lines)
}

// fill sets slot only while it is still unset.
func fill(slot *decimal.Decimal, v decimal.Decimal) {
	if slot.IsZero() {
		*slot = v
	}
}

func (d *draft) summary(text string) dto.BillSummary {
	issues := make([]string, len(d.issues))
	copy(issues, d.issues)

	return dto.BillSummary{
		Provider:            orDefault(d.provider, UnknownProvider),
		ServiceDate:         orDefault(d.serviceDate, UnknownDate),
		Procedure:           orDefault(d.procedure, UnknownProcedure),
		BilledAmount:        money(d.billed),
		AllowedAmount:       money(d.allowed),
		InsurerPaid:         money(d.insurerPaid),
		PrintedOwe:          money(d.printedOwe),
		ShouldOwe:           money(d.shouldOwe),
		EstimatedOvercharge: money(d.overcharge),
		Issues:              issues,
		RawText:             text,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func money(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}
