package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/prompts"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/formatting"
)

// Trace stages written during classification.
const (
	StageInput  = "classifier_agent_input"
	StageOutput = "classifier_agent_output"
)

// pdfPreviewLimit caps how many raw bytes of a PDF are shown to the model.
const pdfPreviewLimit = 2048

// Classifier combines the structural heuristic with model classification and
// records both sides in the trace store.
type Classifier struct {
	trace     trace.System
	extractor extraction.Extractor
	logger    *slog.Logger
}

// New initializes a Classifier.
func New(ts trace.System, extractor extraction.Extractor, logger *slog.Logger) *Classifier {
	return &Classifier{
		trace:     ts,
		extractor: extractor,
		logger:    logger.With("system", "classify"),
	}
}

// Process classifies the input content. Model transport failures propagate to
// the caller; a response that cannot be parsed or validated degrades to the
// heuristic format with Unknown intent. When the heuristic detects a format,
// it overrides the model's format in the result.
func (c *Classifier) Process(ctx context.Context, processID string, input Input) (Result, error) {
	contentType := "bytes"
	if input.Text {
		contentType = "text"
	}

	c.trace.Put(ctx, processID, StageInput, map[string]any{
		"content_length": len(input.Data),
		"content_type":   contentType,
	})

	heuristic := Sniff(input.Data, input.Text)
	preview := preview(input, heuristic)

	prompt, err := prompts.Compose(prompts.StageClassify, preview)
	if err != nil {
		return Result{}, fmt.Errorf("compose classification prompt: %w", err)
	}

	raw, err := c.extractor.Extract(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("classify content: %w", err)
	}

	result, err := formatting.Parse[Result](raw)
	if err == nil {
		err = result.Validate()
	}
	if err != nil {
		c.logger.Warn("classification response rejected",
			"process_id", processID,
			"error", err,
		)
		result = Result{Format: heuristic, Intent: IntentUnknown, Confidence: 0}
		c.trace.Put(ctx, processID, StageOutput, result)
		return result, nil
	}

	if heuristic != FormatUnknown {
		result.Format = heuristic
	}

	c.trace.Put(ctx, processID, StageOutput, result)

	c.logger.Info("content classified",
		"process_id", processID,
		"format", result.Format,
		"intent", result.Intent,
	)

	return result, nil
}

// preview renders the content for prompt inclusion. PDF bytes are capped and
// sanitized; other byte content is sanitized in full.
func preview(input Input, heuristic Format) string {
	if input.Text {
		return string(input.Data)
	}
	data := input.Data
	if heuristic == FormatPDF && len(data) > pdfPreviewLimit {
		data = data[:pdfPreviewLimit]
	}
	return strings.ToValidUTF8(string(data), "")
}
