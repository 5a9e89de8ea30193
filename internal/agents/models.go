// Package agents implements the format-specific processing agents. Each
// agent extracts structured data from one content format, records its inputs
// and outputs in the trace store, and dispatches follow-up actions based on
// what it finds.
package agents

import "slices"

// Urgency levels an email agent may assign.
const (
	UrgencyHigh    = "High"
	UrgencyMedium  = "Medium"
	UrgencyLow     = "Low"
	UrgencyUnknown = "Unknown"
)

var urgencies = []string{UrgencyHigh, UrgencyMedium, UrgencyLow, UrgencyUnknown}

// Tones an email agent may assign.
const (
	ToneEscalation  = "Escalation"
	TonePolite      = "Polite"
	ToneThreatening = "Threatening"
	ToneNeutral     = "Neutral"
	ToneUnknown     = "Unknown"
)

var tones = []string{ToneEscalation, TonePolite, ToneThreatening, ToneNeutral, ToneUnknown}

// EmailContent is the structured extraction of an email.
type EmailContent struct {
	Sender       string `json:"sender"`
	Urgency      string `json:"urgency"`
	IssueRequest string `json:"issue_request"`
	Tone         string `json:"tone"`
}

// Validate checks that the extraction holds recognized urgency and tone
// values and a non-empty sender.
func (e EmailContent) Validate() error {
	if e.Sender == "" {
		return ErrMissingField
	}
	if !slices.Contains(urgencies, e.Urgency) {
		return ErrInvalidUrgency
	}
	if !slices.Contains(tones, e.Tone) {
		return ErrInvalidTone
	}
	return nil
}

// WebhookResult is the outcome of webhook payload validation.
type WebhookResult struct {
	IsValidSchema bool           `json:"is_valid_schema"`
	Anomalies     []string       `json:"anomalies"`
	ParsedData    map[string]any `json:"parsed_data"`
}

// InvoiceLineItem is a single billed item on an invoice.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// InvoiceData is the structured extraction of an invoice document.
type InvoiceData struct {
	InvoiceNumber string            `json:"invoice_number"`
	Date          string            `json:"date"`
	TotalAmount   float64           `json:"total_amount"`
	Currency      string            `json:"currency"`
	LineItems     []InvoiceLineItem `json:"line_items"`
}

// Validate checks that the required invoice fields are present.
func (i InvoiceData) Validate() error {
	if i.InvoiceNumber == "" || i.Date == "" || i.Currency == "" {
		return ErrMissingField
	}
	return nil
}

// PolicyData is the structured extraction of a policy document.
type PolicyData struct {
	PolicyTitle   string   `json:"policy_title"`
	PolicyID      string   `json:"policy_id"`
	KeywordsFound []string `json:"keywords_found"`
	Summary       string   `json:"summary"`
}

// Validate checks that the required policy fields are present.
func (p PolicyData) Validate() error {
	if p.PolicyTitle == "" || p.PolicyID == "" {
		return ErrMissingField
	}
	return nil
}

// Document types a PDF agent may assign.
const (
	DocumentInvoice = "Invoice"
	DocumentPolicy  = "Policy"
	DocumentOther   = "Other"
)

// Flags raised during PDF processing.
const (
	FlagExtractionFailed   = "PDF_Extraction_Failed"
	FlagInvoiceTotalHigh   = "Invoice_Total_High"
	FlagComplianceKeywords = "Compliance_Relevant_Keywords"
)

// PDFResult is the outcome of PDF document processing. InvoiceData and
// PolicyData are mutually exclusive; both are nil when the document matched
// neither shape.
type PDFResult struct {
	DocumentType string       `json:"document_type"`
	InvoiceData  *InvoiceData `json:"invoice_data"`
	PolicyData   *PolicyData  `json:"policy_data"`
	Flags        []string     `json:"flags"`
}
