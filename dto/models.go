package dto

// BillSummary is the structured reading of one medical bill.
// Monetary fields are rounded to two decimals; RawText echoes the input verbatim.
type BillSummary struct {
	Provider            string   `json:"provider"`
	ServiceDate         string   `json:"service_date"`
	Procedure           string   `json:"procedure"`
	BilledAmount        float64  `json:"billed_amount"`
	AllowedAmount       float64  `json:"allowed_amount"`
	InsurerPaid         float64  `json:"insurer_paid"`
	PrintedOwe          float64  `json:"printed_owe"`
	ShouldOwe           float64  `json:"should_owe"`
	EstimatedOvercharge float64  `json:"estimated_overcharge"`
	Issues              []string `json:"issues"`
	RawText             string   `json:"raw_text"`
}

// TextSource records how the text of an uploaded document was obtained
type TextSource string

const (
	TextSourcePDFText   TextSource = "pdf_text"
	TextSourcePDFOCR    TextSource = "pdf_ocr"
	TextSourceImageOCR  TextSource = "image_ocr"
	TextSourcePlainText TextSource = "plain_text"
	TextSourceNone      TextSource = "none"
)
