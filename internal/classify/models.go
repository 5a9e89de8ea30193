// Package classify determines the format and business intent of inbound
// content, combining a structural heuristic with model classification.
package classify

import "slices"

// Format identifies the structural format of inbound content.
type Format string

// Valid content formats.
const (
	FormatEmail   Format = "Email"
	FormatJSON    Format = "JSON"
	FormatPDF     Format = "PDF"
	FormatUnknown Format = "Unknown"
)

var formats = []Format{FormatEmail, FormatJSON, FormatPDF, FormatUnknown}

// Intent identifies the business intent of inbound content.
type Intent string

// Valid business intents.
const (
	IntentRFQ        Intent = "RFQ"
	IntentComplaint  Intent = "Complaint"
	IntentInvoice    Intent = "Invoice"
	IntentRegulation Intent = "Regulation"
	IntentFraudRisk  Intent = "Fraud Risk"
	IntentUnknown    Intent = "Unknown"
)

var intents = []Intent{
	IntentRFQ,
	IntentComplaint,
	IntentInvoice,
	IntentRegulation,
	IntentFraudRisk,
	IntentUnknown,
}

// Input carries inbound content into classification. Text indicates the
// content arrived as text rather than raw bytes.
type Input struct {
	Data []byte
	Text bool
}

// Result is the outcome of classification.
type Result struct {
	Format     Format  `json:"format"`
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Validate checks that the result holds recognized format and intent values
// and a confidence within [0, 1].
func (r Result) Validate() error {
	if !slices.Contains(formats, r.Format) {
		return ErrInvalidFormat
	}
	if !slices.Contains(intents, r.Intent) {
		return ErrInvalidIntent
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return ErrInvalidConfidence
	}
	return nil
}
