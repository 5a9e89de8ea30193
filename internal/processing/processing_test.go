package processing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/agents"
	"github.com/docket-systems/docket/internal/classify"
	"github.com/docket-systems/docket/internal/processing"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/retry"
)

// stubModel replays scripted responses in call order, then returns err for
// any further calls.
type stubModel struct {
	replies []string
	err     error
	calls   int
}

func (s *stubModel) Extract(_ context.Context, _ string) (string, error) {
	defer func() { s.calls++ }()
	if s.calls < len(s.replies) {
		return s.replies[s.calls], nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", errors.New("unexpected extract call")
}

type stubText struct {
	text string
}

func (s stubText) ExtractText(_ []byte) string {
	return s.text
}

// recordingTrace captures the process ID of the most recent write so tests
// can inspect the trace of runs that fail before returning a Result.
type recordingTrace struct {
	trace.System
	lastProcessID string
}

func (r *recordingTrace) Put(ctx context.Context, processID, stage string, payload any) {
	r.lastProcessID = processID
	r.System.Put(ctx, processID, stage, payload)
}

func newSystem(t *testing.T, model *stubModel, policy retry.Policy) (processing.System, *recordingTrace) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := trace.New(context.Background(), &trace.Config{Backend: trace.BackendMemory}, nil, logger)
	if err != nil {
		t.Fatalf("trace.New: %v", err)
	}
	ts := &recordingTrace{System: store}

	dispatcher := actions.NewDispatcher(ts, logger, 0)

	webhook, err := agents.NewWebhookAgent(ts, dispatcher, logger)
	if err != nil {
		t.Fatalf("NewWebhookAgent: %v", err)
	}

	sys := processing.New(
		ts,
		nil,
		classify.New(ts, model, logger),
		agents.NewEmailAgent(ts, model, dispatcher, logger),
		webhook,
		agents.NewPDFAgent(ts, model, dispatcher, stubText{}, logger),
		policy,
		logger,
	)
	return sys, ts
}

func quickPolicy() retry.Policy {
	return retry.Policy{Attempts: 2, BaseDelay: time.Millisecond}
}

const emailClassification = `{"format": "Email", "intent": "Complaint", "confidence": 0.95}`

const emailBody = "From: angry@customer.com\nSubject: Broken unit\n\nThe unit arrived broken."

const emailExtraction = `{
	"sender": "angry@customer.com",
	"urgency": "Medium",
	"issue_request": "Unit arrived broken",
	"tone": "Neutral"
}`

func TestProcessEmailFlow(t *testing.T) {
	sys, _ := newSystem(t, &stubModel{replies: []string{emailClassification, emailExtraction}}, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte(emailBody),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if result.ProcessID == "" {
		t.Error("expected a process ID")
	}
	if result.Status != processing.StatusEmailProcessed {
		t.Errorf("status = %q, want %q", result.Status, processing.StatusEmailProcessed)
	}

	for _, stage := range []string{
		processing.StageInputMetadata,
		classify.StageOutput,
		agents.StageEmailOutput,
		processing.StageProcessingSummary,
	} {
		if _, ok := result.Trace[stage]; !ok {
			t.Errorf("trace missing stage %q", stage)
		}
	}

	meta, ok := result.Trace[processing.StageInputMetadata].(map[string]any)
	if !ok {
		t.Fatalf("input metadata = %T, want map", result.Trace[processing.StageInputMetadata])
	}
	if meta["process_id"] != result.ProcessID {
		t.Errorf("metadata process_id = %v, want %s", meta["process_id"], result.ProcessID)
	}
	if meta["source_type"] != processing.SourceRawContent {
		t.Errorf("metadata source_type = %v", meta["source_type"])
	}
}

func TestProcessWebhookFlow(t *testing.T) {
	classification := `{"format": "JSON", "intent": "Unknown", "confidence": 0.9}`
	payload := `{"event_type": "order_created", "timestamp": "2024-01-15T10:00:00Z", "data": {"order_id": "123"}, "source_app": "shop"}`

	sys, _ := newSystem(t, &stubModel{replies: []string{classification}}, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte(payload),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if result.Status != processing.StatusJSONProcessed {
		t.Errorf("status = %q, want %q", result.Status, processing.StatusJSONProcessed)
	}
	if _, ok := result.Trace[agents.StageWebhookOutput]; !ok {
		t.Error("trace missing webhook output stage")
	}
}

func TestProcessPDFFlow(t *testing.T) {
	classification := `{"format": "PDF", "intent": "Invoice", "confidence": 0.9}`

	sys, _ := newSystem(t, &stubModel{replies: []string{classification}}, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte("%PDF-1.4 binary content"),
		Text:       false,
		SourceType: processing.SourceFile,
		Filename:   "invoice.pdf",
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	// The stub text extractor yields no text, so the agent degrades but the
	// run still completes.
	if result.Status != processing.StatusPDFProcessed {
		t.Errorf("status = %q, want %q", result.Status, processing.StatusPDFProcessed)
	}
	if _, ok := result.Trace[agents.StagePDFOutput]; !ok {
		t.Error("trace missing pdf output stage")
	}
}

func TestProcessUnknownFormat(t *testing.T) {
	classification := `{"format": "Unknown", "intent": "Unknown", "confidence": 0.2}`

	sys, _ := newSystem(t, &stubModel{replies: []string{classification}}, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte("some plain text that matches nothing"),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if result.Status != processing.StatusUnknownFormat {
		t.Errorf("status = %q, want %q", result.Status, processing.StatusUnknownFormat)
	}

	routing, ok := result.Trace[processing.StageRoutingDecision].(map[string]any)
	if !ok {
		t.Fatal("trace missing routing decision stage")
	}
	if routing["agent"] != "None" {
		t.Errorf("routing agent = %v, want None", routing["agent"])
	}
}

func TestProcessClassificationFailure(t *testing.T) {
	model := &stubModel{err: errors.New("model unavailable")}
	sys, ts := newSystem(t, model, quickPolicy())

	_, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte("some content"),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if !errors.Is(err, processing.ErrClassification) {
		t.Fatalf("error = %v, want %v", err, processing.ErrClassification)
	}

	if model.calls != 2 {
		t.Errorf("model calls = %d, want 2 retry attempts", model.calls)
	}

	entries := ts.GetAll(context.Background(), ts.lastProcessID)
	if _, ok := entries[processing.StageClassificationError]; !ok {
		t.Error("trace missing classification error stage")
	}
}

func TestProcessAgentFailure(t *testing.T) {
	model := &stubModel{
		replies: []string{emailClassification},
		err:     errors.New("model unavailable"),
	}
	sys, _ := newSystem(t, model, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte(emailBody),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if !strings.HasPrefix(result.Status, "Agent processing failed:") {
		t.Errorf("status = %q, want agent failure status", result.Status)
	}
	if _, ok := result.Trace[processing.StageAgentError]; !ok {
		t.Error("trace missing agent error stage")
	}
	if _, ok := result.Trace[processing.StageProcessingSummary]; !ok {
		t.Error("trace missing processing summary stage")
	}
}

func TestProcessEmptyInput(t *testing.T) {
	sys, _ := newSystem(t, &stubModel{}, quickPolicy())

	_, err := sys.Process(context.Background(), processing.Input{})
	if !errors.Is(err, processing.ErrNoInput) {
		t.Errorf("error = %v, want %v", err, processing.ErrNoInput)
	}
}

func TestProcessTextRequired(t *testing.T) {
	sys, _ := newSystem(t, &stubModel{replies: []string{emailClassification}}, quickPolicy())

	_, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte(emailBody),
		Text:       false,
		SourceType: processing.SourceFile,
		Filename:   "message.eml",
	})
	if !errors.Is(err, processing.ErrTextRequired) {
		t.Errorf("error = %v, want %v", err, processing.ErrTextRequired)
	}
}

func TestTrace(t *testing.T) {
	sys, _ := newSystem(t, &stubModel{replies: []string{emailClassification, emailExtraction}}, quickPolicy())

	result, err := sys.Process(context.Background(), processing.Input{
		Data:       []byte(emailBody),
		Text:       true,
		SourceType: processing.SourceRawContent,
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	t.Run("known process returns entries", func(t *testing.T) {
		entries, err := sys.Trace(context.Background(), result.ProcessID)
		if err != nil {
			t.Fatalf("Trace error: %v", err)
		}
		if len(entries) != len(result.Trace) {
			t.Errorf("entries = %d, want %d", len(entries), len(result.Trace))
		}
	})

	t.Run("unknown process returns not found", func(t *testing.T) {
		if _, err := sys.Trace(context.Background(), "missing-id"); !errors.Is(err, processing.ErrNotFound) {
			t.Errorf("error = %v, want %v", err, processing.ErrNotFound)
		}
	})
}
