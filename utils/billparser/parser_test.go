package billparser

import (
	"testing"

	"github.com/YuxiangJiangCT/billassistant/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTotalsAndAmountDue(t *testing.T) {
	text := `NYC Imaging Center
Statement Date: 06/01/2025
Total Charges $1400.00
Amount Due $780.00`

	s := Decode(text)

	assert.Equal(t, "NYC Imaging Center", s.Provider)
	assert.Equal(t, "06/01/2025", s.ServiceDate)
	assert.Equal(t, UnknownProcedure, s.Procedure)
	assert.Equal(t, 1400.00, s.BilledAmount)
	assert.Equal(t, 780.00, s.PrintedOwe)
	assert.Equal(t, 910.00, s.AllowedAmount)
	assert.Equal(t, 728.00, s.InsurerPaid)
	assert.Equal(t, 182.00, s.ShouldOwe)
	assert.Equal(t, 598.00, s.EstimatedOvercharge)
	assert.Equal(t, []string{IssueBilledAboveAllowed, IssueOweAboveExpected}, s.Issues)
	assert.Equal(t, text, s.RawText)
}

func TestDecodeDetailLineFourColumns(t *testing.T) {
	s := Decode("05/12/2025 70551 MRI BRAIN 1400.00 900.00 620.00 180.00")

	assert.Equal(t, "05/12/2025", s.ServiceDate)
	assert.Equal(t, "70551", s.Procedure)
	assert.Equal(t, 1400.00, s.BilledAmount)
	assert.Equal(t, 900.00, s.AllowedAmount)
	assert.Equal(t, 620.00, s.InsurerPaid)
	assert.Equal(t, 180.00, s.PrintedOwe)
	assert.Equal(t, 180.00, s.ShouldOwe)
	assert.Equal(t, 0.0, s.EstimatedOvercharge)
	assert.Equal(t, []string{IssueBilledAboveAllowed}, s.Issues)
}

func TestDecodeDetailLineThreeColumns(t *testing.T) {
	s := Decode("06/02/2025 80053 LAB PANEL 250.00 200.00 50.00")

	assert.Equal(t, 250.00, s.BilledAmount)
	assert.Equal(t, 200.00, s.InsurerPaid)
	assert.Equal(t, 50.00, s.PrintedOwe)
	assert.Equal(t, 162.50, s.AllowedAmount)
	assert.Equal(t, 32.50, s.ShouldOwe)
	assert.Equal(t, 17.50, s.EstimatedOvercharge)
}

func TestDecodeDetailLineTwoColumns(t *testing.T) {
	s := Decode("06/02/2025 80053 LAB 250.00 50.00")

	assert.Equal(t, 250.00, s.BilledAmount)
	assert.Equal(t, 50.00, s.PrintedOwe)
	assert.Equal(t, 162.50, s.AllowedAmount)
	assert.Equal(t, 130.00, s.InsurerPaid)
}

func TestDecodeKeywordBeatsDetailLine(t *testing.T) {
	text := `Amount Due $75.00
05/12/2025 70551 MRI 1400.00 900.00 620.00 180.00
05/13/2025 70552 MRI 9000.00 10.00 20.00 30.00`

	s := Decode(text)

	assert.Equal(t, 75.00, s.PrintedOwe)
	assert.Equal(t, 1400.00, s.BilledAmount)
	assert.Equal(t, 900.00, s.AllowedAmount)
	assert.Equal(t, 620.00, s.InsurerPaid)
}

func TestDecodeProviderHeader(t *testing.T) {
	text := `Patient Name: John Doe
NYC Imaging Center
123 Medical Plaza Suite 400, New York
Total Charges 1,400.00`

	s := Decode(text)
	assert.Equal(t, "NYC Imaging Center", s.Provider)
}

func TestDecodeNoSignal(t *testing.T) {
	s := Decode("Thank you for choosing us.\nPlease call with any questions.")

	assert.Equal(t, UnknownProvider, s.Provider)
	assert.Equal(t, UnknownDate, s.ServiceDate)
	assert.Equal(t, UnknownProcedure, s.Procedure)
	assert.Zero(t, s.BilledAmount)
	assert.Zero(t, s.AllowedAmount)
	assert.Zero(t, s.InsurerPaid)
	assert.Zero(t, s.PrintedOwe)
	assert.Zero(t, s.ShouldOwe)
	assert.Zero(t, s.EstimatedOvercharge)
	assert.NotNil(t, s.Issues)
	assert.Empty(t, s.Issues)
}

func TestDecodePrefersCurrencyMarkedOwe(t *testing.T) {
	for _, responsibility := range []string{"Patient Responsibility 300", "Patient Responsibility 300.00"} {
		t.Run(responsibility, func(t *testing.T) {
			s := Decode("Pay $250.00 now\n" + responsibility)

			assert.Equal(t, 250.00, s.PrintedOwe)
			assert.Equal(t, 250.00, s.BilledAmount)
			assert.Equal(t, 162.50, s.AllowedAmount)
			assert.Equal(t, 130.00, s.InsurerPaid)
			assert.Equal(t, 32.50, s.ShouldOwe)
			assert.Equal(t, 217.50, s.EstimatedOvercharge)
		})
	}
}

func TestDecodeNonBreakingSpaceInPdfText(t *testing.T) {
	s := Decode("Procedure CPT\u00a070551\nPay $\u00a0250.00 now\nPatient Responsibility 300.00")

	assert.Equal(t, "CPT\u00a070551", s.Procedure)
	assert.Equal(t, 250.00, s.PrintedOwe)
}

func TestDecodeCurrencyPreferenceOnlyAppliesToOwe(t *testing.T) {
	s := Decode("Total Charges $500.00\nTotal Billed 900.00")
	assert.Equal(t, 900.00, s.BilledAmount)
}

func TestDecodeLargestProposalWins(t *testing.T) {
	s := Decode("Total Charges 300.00\nTotal Charges 1,250.00\nTotal Charges 800.00")
	assert.Equal(t, 1250.00, s.BilledAmount)
}

func TestDecodeAllowedAndPaidKeywords(t *testing.T) {
	text := `Total Charges 2,000.00
Plan Allowed 1,200.00
Insurance Paid 960.00
You Owe 240.00`

	s := Decode(text)

	assert.Equal(t, 2000.00, s.BilledAmount)
	assert.Equal(t, 1200.00, s.AllowedAmount)
	assert.Equal(t, 960.00, s.InsurerPaid)
	assert.Equal(t, 240.00, s.PrintedOwe)
	assert.Equal(t, 240.00, s.ShouldOwe)
	assert.Equal(t, 0.0, s.EstimatedOvercharge)
	assert.Equal(t, []string{IssueBilledAboveAllowed}, s.Issues)
}

func TestDecodeShouldOweWhenAllowedNotBelowBilled(t *testing.T) {
	text := `Total Charges 500.00
Allowed Amount 500.00
Amount Due 100.00`

	s := Decode(text)

	// allowed does not sit below billed, so should-owe uses 65% of billed
	assert.Equal(t, 65.00, s.ShouldOwe)
	assert.Equal(t, 35.00, s.EstimatedOvercharge)
	assert.Equal(t, []string{IssueOweAboveExpected}, s.Issues)
}

func TestDecodeCommaDecimalOwe(t *testing.T) {
	s := Decode("Amount Due 7,353,60")
	assert.Equal(t, 7353.60, s.PrintedOwe)
}

func TestDecodePoolFallback(t *testing.T) {
	s := Decode("Lab fee 150.00\nOther 600.00\nRef 75000.00")

	assert.Equal(t, 600.00, s.BilledAmount)
	assert.Equal(t, 150.00, s.PrintedOwe)
	assert.Equal(t, 390.00, s.AllowedAmount)
	assert.Equal(t, 312.00, s.InsurerPaid)
	assert.Equal(t, 78.00, s.ShouldOwe)
	assert.Equal(t, 72.00, s.EstimatedOvercharge)
}

func TestDecodeBilledWithinMarkupWindow(t *testing.T) {
	s := Decode("Balance Due 200.00\nLab 900.00\nRef 5000.00")

	// the owed figure itself is the smallest pool value in [200, 1000]
	assert.Equal(t, 200.00, s.BilledAmount)

	s = Decode("Balance Due $200.00")
	assert.Equal(t, 200.00, s.BilledAmount)
}

func TestDecodeSingleAmount(t *testing.T) {
	s := Decode("Misc 99.99")

	assert.Equal(t, 99.99, s.BilledAmount)
	assert.Equal(t, 99.99, s.PrintedOwe)
	assert.Equal(t, 64.99, s.AllowedAmount)
	assert.Equal(t, 51.99, s.InsurerPaid)
	assert.Equal(t, 13.00, s.ShouldOwe)
	assert.Equal(t, 86.99, s.EstimatedOvercharge)
}

func TestParseRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\r\n"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, dto.ErrNoTextExtracted)
	}

	s, err := Parse("Total Charges $1400.00")
	require.NoError(t, err)
	assert.Equal(t, 1400.00, s.BilledAmount)
}

var corpus = []string{
	"NYC Imaging Center\nTotal Charges $1400.00\nAmount Due $780.00",
	"05/12/2025 70551 MRI BRAIN 1400.00 900.00 620.00 180.00",
	"Pay $250.00 now\nPatient Responsibility 300",
	"Misc 99.99\nRef 49,999.99\nCode 12345 0.01",
	"Total Charges 333.33\nAllowed Amount 111.11\nAmount Due 77.77",
	"Amount Due 7,353,60\nTotal Amount 8,001,01",
	"Thank you",
}

func TestDecodeIsDeterministic(t *testing.T) {
	for _, text := range corpus {
		assert.Equal(t, Decode(text), Decode(text))
	}
}

func TestDecodeMoneyInvariants(t *testing.T) {
	for _, text := range corpus {
		s := Decode(text)

		for _, v := range []float64{s.BilledAmount, s.AllowedAmount, s.InsurerPaid, s.PrintedOwe, s.ShouldOwe, s.EstimatedOvercharge} {
			assert.GreaterOrEqual(t, v, 0.0, text)
			d := decimal.NewFromFloat(v)
			assert.True(t, d.Equal(d.Round(2)), "%s: %v has more than two decimals", text, v)
		}

		want := decimal.Max(decimal.Zero, decimal.NewFromFloat(s.PrintedOwe).Sub(decimal.NewFromFloat(s.ShouldOwe))).Round(2)
		assert.True(t, want.Equal(decimal.NewFromFloat(s.EstimatedOvercharge)), text)
	}
}
