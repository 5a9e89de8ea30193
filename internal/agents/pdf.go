package agents

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/prompts"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/formatting"
)

// Trace stages written by the PDF agent.
const (
	StagePDFInput  = "pdf_agent_input"
	StagePDFOutput = "pdf_agent_output"
)

// pdfTextLimit caps how much extracted text is shown to the model.
const pdfTextLimit = 8000

// highValueThreshold is the invoice total above which a risk alert is raised.
const highValueThreshold = 10000.0

// complianceKeywords flag a policy document for compliance review when any
// appear in its extracted keywords.
var complianceKeywords = []string{"gdpr", "fda", "hipaa", "ccpa", "pci dss"}

// PDFAgent extracts structured data from PDF documents, attempting invoice
// extraction first and falling back to policy extraction.
type PDFAgent struct {
	trace      trace.System
	extractor  extraction.Extractor
	dispatcher *actions.Dispatcher
	text       TextExtractor
	logger     *slog.Logger
}

// NewPDFAgent initializes a PDFAgent.
func NewPDFAgent(
	ts trace.System,
	extractor extraction.Extractor,
	dispatcher *actions.Dispatcher,
	text TextExtractor,
	logger *slog.Logger,
) *PDFAgent {
	return &PDFAgent{
		trace:      ts,
		extractor:  extractor,
		dispatcher: dispatcher,
		text:       text,
		logger:     logger.With("system", "agents", "agent", "pdf"),
	}
}

// Process extracts structured data from PDF bytes. A document that yields no
// text is flagged and raises an anomaly alert. Otherwise the agent attempts
// invoice extraction, then policy extraction; a high invoice total raises a
// risk alert, and compliance-relevant policy keywords raise a compliance
// flag. Documents matching neither shape are logged and closed as Other.
// Model transport failures propagate to the caller.
func (a *PDFAgent) Process(ctx context.Context, processID string, data []byte) (PDFResult, error) {
	a.trace.Put(ctx, processID, StagePDFInput, map[string]any{
		"content_size": len(data),
	})

	extracted := a.text.ExtractText(data)
	if extracted == "" {
		a.logger.Warn("pdf text extraction failed", "process_id", processID)
		result := PDFResult{
			DocumentType: DocumentOther,
			Flags:        []string{FlagExtractionFailed},
		}
		a.trace.Put(ctx, processID, StagePDFOutput, result)
		a.dispatcher.AnomalyAlert(ctx, processID, map[string]any{
			"reason": FlagExtractionFailed,
		})
		return result, nil
	}

	content := extracted
	if len(content) > pdfTextLimit {
		content = strings.ToValidUTF8(content[:pdfTextLimit], "")
	}

	result := PDFResult{DocumentType: DocumentOther}

	invoice, err := a.extractInvoice(ctx, processID, content)
	if err != nil {
		return PDFResult{}, err
	}
	if invoice != nil {
		result.DocumentType = DocumentInvoice
		result.InvoiceData = invoice
		if invoice.TotalAmount > highValueThreshold {
			result.Flags = append(result.Flags, FlagInvoiceTotalHigh)
			a.dispatcher.RiskAlert(ctx, processID, map[string]any{
				"reason":      "HighValueInvoice",
				"total":       invoice.TotalAmount,
				"invoice_num": invoice.InvoiceNumber,
			})
		}
	} else {
		policy, err := a.extractPolicy(ctx, processID, content)
		if err != nil {
			return PDFResult{}, err
		}
		if policy != nil {
			result.DocumentType = DocumentPolicy
			result.PolicyData = policy
			if hasComplianceKeywords(policy.KeywordsFound) {
				result.Flags = append(result.Flags, FlagComplianceKeywords)
				a.dispatcher.ComplianceFlag(ctx, processID, map[string]any{
					"reason":       "ComplianceKeywordsFound",
					"keywords":     policy.KeywordsFound,
					"policy_title": policy.PolicyTitle,
				})
			}
		}
	}

	a.trace.Put(ctx, processID, StagePDFOutput, result)

	a.logger.Info("pdf processed",
		"process_id", processID,
		"document_type", result.DocumentType,
		"flags", result.Flags,
	)

	if len(result.Flags) == 0 {
		a.dispatcher.LogAndClose(ctx, processID, map[string]any{
			"message": fmt.Sprintf("PDF processed as %s", result.DocumentType),
			"summary": result,
		})
	}

	return result, nil
}

// extractInvoice attempts invoice extraction. A response that cannot be
// parsed or validated means the document is not an invoice; only transport
// failures return an error.
func (a *PDFAgent) extractInvoice(ctx context.Context, processID, content string) (*InvoiceData, error) {
	prompt, err := prompts.Compose(prompts.StageInvoice, content)
	if err != nil {
		return nil, fmt.Errorf("compose invoice prompt: %w", err)
	}

	raw, err := a.extractor.Extract(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract invoice data: %w", err)
	}

	parsed, err := formatting.Parse[InvoiceData](raw)
	if err == nil {
		err = parsed.Validate()
	}
	if err != nil {
		a.logger.Debug("content did not match invoice shape",
			"process_id", processID,
			"error", err,
		)
		return nil, nil
	}

	return &parsed, nil
}

// extractPolicy attempts policy extraction with the same error contract as
// extractInvoice.
func (a *PDFAgent) extractPolicy(ctx context.Context, processID, content string) (*PolicyData, error) {
	prompt, err := prompts.Compose(prompts.StagePolicy, content)
	if err != nil {
		return nil, fmt.Errorf("compose policy prompt: %w", err)
	}

	raw, err := a.extractor.Extract(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract policy data: %w", err)
	}

	parsed, err := formatting.Parse[PolicyData](raw)
	if err == nil {
		err = parsed.Validate()
	}
	if err != nil {
		a.logger.Debug("content did not match policy shape",
			"process_id", processID,
			"error", err,
		)
		return nil, nil
	}

	return &parsed, nil
}

func hasComplianceKeywords(found []string) bool {
	for _, kw := range found {
		if slices.Contains(complianceKeywords, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
