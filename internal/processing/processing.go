package processing

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/docket-systems/docket/internal/agents"
	"github.com/docket-systems/docket/internal/classify"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/retry"
	"github.com/docket-systems/docket/pkg/storage"
)

// Trace stages written by the orchestrator.
const (
	StageInputMetadata       = "input_metadata"
	StageClassificationError = "classification_error"
	StageRoutingDecision     = "routing_decision"
	StageAgentError          = "agent_processing_error"
	StageProcessingSummary   = "processing_summary"
)

// Processing run statuses.
const (
	StatusEmailProcessed = "Email processed"
	StatusJSONProcessed  = "JSON processed"
	StatusPDFProcessed   = "PDF processed"
	StatusUnknownFormat  = "Unknown format, no specialized agent action"
)

type system struct {
	trace      trace.System
	archive    storage.System
	classifier *classify.Classifier
	email      *agents.EmailAgent
	webhook    *agents.WebhookAgent
	pdf        *agents.PDFAgent
	policy     retry.Policy
	logger     *slog.Logger
}

// New assembles the processing system. The archive is optional; pass nil to
// disable content archival.
func New(
	ts trace.System,
	archive storage.System,
	classifier *classify.Classifier,
	email *agents.EmailAgent,
	webhook *agents.WebhookAgent,
	pdf *agents.PDFAgent,
	policy retry.Policy,
	logger *slog.Logger,
) System {
	return &system{
		trace:      ts,
		archive:    archive,
		classifier: classifier,
		email:      email,
		webhook:    webhook,
		pdf:        pdf,
		policy:     policy,
		logger:     logger.With("system", "processing"),
	}
}

// Handler creates an HTTP handler bound to this system.
func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

// Process runs a full intake pass over the input: record metadata, archive
// the raw content, classify, route to the matching agent, and summarize.
// Classification exhausting its retries fails the run; an agent exhausting
// its retries degrades the run status but still yields a full trace.
func (s *system) Process(ctx context.Context, input Input) (*Result, error) {
	if len(input.Data) == 0 {
		return nil, ErrNoInput
	}

	processID := uuid.NewString()
	start := time.Now()

	s.logger.Info("processing started",
		"process_id", processID,
		"source_type", input.SourceType,
		"content_length", len(input.Data),
	)

	s.trace.Put(ctx, processID, StageInputMetadata, map[string]any{
		"process_id":        processID,
		"timestamp":         start.UTC().Format(time.RFC3339),
		"source_type":       input.SourceType,
		"original_filename": input.Filename,
		"input_type_hint":   input.TypeHint,
	})

	s.archiveContent(ctx, processID, input)

	classification, err := retry.Do(ctx, s.policy, func(ctx context.Context) (classify.Result, error) {
		return s.classifier.Process(ctx, processID, classify.Input{
			Data: input.Data,
			Text: input.Text,
		})
	})
	if err != nil {
		s.trace.Put(ctx, processID, StageClassificationError, map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	status, err := s.route(ctx, processID, input, classification)
	if err != nil {
		return nil, err
	}

	s.trace.Put(ctx, processID, StageProcessingSummary, map[string]any{
		"status":           status,
		"duration_seconds": time.Since(start).Seconds(),
	})

	s.logger.Info("processing complete",
		"process_id", processID,
		"status", status,
		"duration", time.Since(start),
	)

	return &Result{
		ProcessID: processID,
		Status:    status,
		Trace:     s.trace.GetAll(ctx, processID),
	}, nil
}

// Trace returns the recorded entries for a process ID. Returns ErrNotFound
// when no entries exist.
func (s *system) Trace(ctx context.Context, processID string) (map[string]any, error) {
	entries := s.trace.GetAll(ctx, processID)
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

// route dispatches the content to the agent matching the classified format.
// A format whose required representation is missing fails with a typed error
// before the agent runs; an agent exhausting its retries is recorded and
// folded into the run status.
func (s *system) route(
	ctx context.Context,
	processID string,
	input Input,
	classification classify.Result,
) (string, error) {
	s.logger.Info("routing content",
		"process_id", processID,
		"format", classification.Format,
		"intent", classification.Intent,
	)

	var (
		status string
		err    error
	)

	switch classification.Format {
	case classify.FormatEmail:
		if !input.Text {
			return "", ErrTextRequired
		}
		_, err = retry.Do(ctx, s.policy, func(ctx context.Context) (agents.EmailContent, error) {
			return s.email.Process(ctx, processID, string(input.Data))
		})
		status = StatusEmailProcessed

	case classify.FormatJSON:
		if !input.Text {
			return "", ErrTextRequired
		}
		_, err = retry.Do(ctx, s.policy, func(ctx context.Context) (agents.WebhookResult, error) {
			return s.webhook.Process(ctx, processID, string(input.Data))
		})
		status = StatusJSONProcessed

	case classify.FormatPDF:
		_, err = retry.Do(ctx, s.policy, func(ctx context.Context) (agents.PDFResult, error) {
			return s.pdf.Process(ctx, processID, input.Data)
		})
		status = StatusPDFProcessed

	default:
		s.trace.Put(ctx, processID, StageRoutingDecision, map[string]any{
			"agent":  "None",
			"reason": "Unknown format",
		})
		return StatusUnknownFormat, nil
	}

	if err != nil {
		s.logger.Error("agent processing failed",
			"process_id", processID,
			"format", classification.Format,
			"error", err,
		)
		s.trace.Put(ctx, processID, StageAgentError, map[string]any{
			"error": err.Error(),
		})
		return fmt.Sprintf("Agent processing failed: %v", err), nil
	}

	return status, nil
}

// archiveContent uploads the raw input to the archive when one is
// configured. Failures are logged and never fail the run.
func (s *system) archiveContent(ctx context.Context, processID string, input Input) {
	if s.archive == nil {
		return
	}

	contentType := http.DetectContentType(input.Data)
	key := processID + "/content"

	if err := s.archive.Upload(ctx, key, bytes.NewReader(input.Data), contentType); err != nil {
		s.logger.Warn("content archival failed",
			"process_id", processID,
			"error", err,
		)
		return
	}

	s.logger.Debug("content archived", "process_id", processID, "key", key)
}
