package agents_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/agents"
	"github.com/docket-systems/docket/internal/trace"
)

type stubText struct {
	text string
}

func (s stubText) ExtractText(_ []byte) string {
	return s.text
}

func newPDFAgent(t *testing.T, extractor *stubExtractor, text string) (*agents.PDFAgent, trace.System) {
	t.Helper()

	ts := newTestTrace(t)
	agent := agents.NewPDFAgent(
		ts,
		extractor,
		newDispatcher(ts),
		stubText{text: text},
		discardLogger(),
	)
	return agent, ts
}

const invoiceResponse = `{
	"invoice_number": "INV-001",
	"date": "2024-01-15",
	"total_amount": 1250.0,
	"currency": "$",
	"line_items": [
		{"description": "Consulting", "quantity": 1, "unit_price": 1250.0, "total": 1250.0}
	]
}`

const highValueInvoiceResponse = `{
	"invoice_number": "INV-002",
	"date": "2024-01-15",
	"total_amount": 50000.0,
	"currency": "$",
	"line_items": []
}`

const policyResponse = `{
	"policy_title": "Privacy Policy",
	"policy_id": "PRIV-001",
	"keywords_found": ["GDPR"],
	"summary": "Data protection commitments."
}`

const plainPolicyResponse = `{
	"policy_title": "Travel Policy",
	"policy_id": "TRAV-001",
	"keywords_found": [],
	"summary": "Travel booking procedures."
}`

func TestPDFAgentExtractionFailure(t *testing.T) {
	ctx := context.Background()
	agent, ts := newPDFAgent(t, &stubExtractor{responses: []string{"unused"}}, "")

	result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4 corrupt"))
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if result.DocumentType != agents.DocumentOther {
		t.Errorf("document type = %q, want Other", result.DocumentType)
	}
	if !slices.Contains(result.Flags, agents.FlagExtractionFailed) {
		t.Errorf("flags = %v, want extraction failure flag", result.Flags)
	}
	if !hasAction(t, ts, "p1", actions.TypeAnomalyAlert) {
		t.Error("extraction failure should raise anomaly alert")
	}
	if _, ok := ts.Get(ctx, "p1", agents.StagePDFOutput); !ok {
		t.Error("missing pdf output trace entry")
	}
}

func TestPDFAgentInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("routine invoice logs and closes", func(t *testing.T) {
		agent, ts := newPDFAgent(t, &stubExtractor{responses: []string{invoiceResponse}}, "Invoice # INV-001 Total $1250")

		result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
		if err != nil {
			t.Fatalf("Process error: %v", err)
		}
		if result.DocumentType != agents.DocumentInvoice {
			t.Errorf("document type = %q, want Invoice", result.DocumentType)
		}
		if result.InvoiceData == nil || result.InvoiceData.InvoiceNumber != "INV-001" {
			t.Errorf("invoice data = %+v", result.InvoiceData)
		}
		if len(result.Flags) != 0 {
			t.Errorf("flags = %v, want none", result.Flags)
		}
		if !hasAction(t, ts, "p1", actions.TypeLogAndClose) {
			t.Error("unflagged invoice should log and close")
		}
	})

	t.Run("high total raises risk alert", func(t *testing.T) {
		agent, ts := newPDFAgent(t, &stubExtractor{responses: []string{highValueInvoiceResponse}}, "Invoice # INV-002 Total $50000")

		result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
		if err != nil {
			t.Fatalf("Process error: %v", err)
		}
		if !slices.Contains(result.Flags, agents.FlagInvoiceTotalHigh) {
			t.Errorf("flags = %v, want high total flag", result.Flags)
		}
		if !hasAction(t, ts, "p1", actions.TypeRiskAlert) {
			t.Error("high value invoice should raise risk alert")
		}
		if hasAction(t, ts, "p1", actions.TypeLogAndClose) {
			t.Error("flagged invoice should not log and close")
		}
	})
}

func TestPDFAgentPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("compliance keywords raise flag", func(t *testing.T) {
		extractor := &stubExtractor{responses: []string{"not an invoice", policyResponse}}
		agent, ts := newPDFAgent(t, extractor, "Privacy Policy with GDPR commitments")

		result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
		if err != nil {
			t.Fatalf("Process error: %v", err)
		}
		if result.DocumentType != agents.DocumentPolicy {
			t.Errorf("document type = %q, want Policy", result.DocumentType)
		}
		if result.PolicyData == nil || result.PolicyData.PolicyID != "PRIV-001" {
			t.Errorf("policy data = %+v", result.PolicyData)
		}
		if !slices.Contains(result.Flags, agents.FlagComplianceKeywords) {
			t.Errorf("flags = %v, want compliance flag", result.Flags)
		}
		if !hasAction(t, ts, "p1", actions.TypeComplianceFlag) {
			t.Error("compliance keywords should raise compliance flag action")
		}
	})

	t.Run("plain policy logs and closes", func(t *testing.T) {
		extractor := &stubExtractor{responses: []string{"not an invoice", plainPolicyResponse}}
		agent, ts := newPDFAgent(t, extractor, "Travel Policy procedures")

		result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
		if err != nil {
			t.Fatalf("Process error: %v", err)
		}
		if result.DocumentType != agents.DocumentPolicy {
			t.Errorf("document type = %q, want Policy", result.DocumentType)
		}
		if len(result.Flags) != 0 {
			t.Errorf("flags = %v, want none", result.Flags)
		}
		if !hasAction(t, ts, "p1", actions.TypeLogAndClose) {
			t.Error("unflagged policy should log and close")
		}
	})
}

func TestPDFAgentNeitherShape(t *testing.T) {
	ctx := context.Background()
	extractor := &stubExtractor{responses: []string{"not an invoice", "not a policy"}}
	agent, ts := newPDFAgent(t, extractor, "meeting notes from tuesday")

	result, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if result.DocumentType != agents.DocumentOther {
		t.Errorf("document type = %q, want Other", result.DocumentType)
	}
	if result.InvoiceData != nil || result.PolicyData != nil {
		t.Error("no structured data expected")
	}
	if !hasAction(t, ts, "p1", actions.TypeLogAndClose) {
		t.Error("unmatched document should log and close")
	}
}

func TestPDFAgentTransportError(t *testing.T) {
	ctx := context.Background()
	transportErr := errors.New("gateway timeout")
	agent, ts := newPDFAgent(t, &stubExtractor{err: transportErr}, "Invoice text")

	_, err := agent.Process(ctx, "p1", []byte("%PDF-1.4"))
	if !errors.Is(err, transportErr) {
		t.Errorf("error = %v, want %v", err, transportErr)
	}
	if _, ok := ts.Get(ctx, "p1", agents.StagePDFOutput); ok {
		t.Error("transport failure should not write output trace entry")
	}
}
