package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/prompts"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/formatting"
)

// Trace stages written by the email agent.
const (
	StageEmailInput  = "email_agent_input"
	StageEmailOutput = "email_agent_output"
	StageEmailError  = "email_agent_error"
)

const emailPreviewLimit = 200

// EmailAgent extracts sender, urgency, issue, and tone from email content
// and routes follow-up actions on the result.
type EmailAgent struct {
	trace      trace.System
	extractor  extraction.Extractor
	dispatcher *actions.Dispatcher
	logger     *slog.Logger
}

// NewEmailAgent initializes an EmailAgent.
func NewEmailAgent(
	ts trace.System,
	extractor extraction.Extractor,
	dispatcher *actions.Dispatcher,
	logger *slog.Logger,
) *EmailAgent {
	return &EmailAgent{
		trace:      ts,
		extractor:  extractor,
		dispatcher: dispatcher,
		logger:     logger.With("system", "agents", "agent", "email"),
	}
}

// Process extracts structured content from an email. Model transport
// failures propagate to the caller; a response that cannot be parsed or
// validated records the error, closes the item out, and returns a degraded
// result.
//
// Escalation tone with high urgency escalates to CRM; a threatening tone
// raises a risk alert; everything else is logged and closed.
func (a *EmailAgent) Process(ctx context.Context, processID, content string) (EmailContent, error) {
	a.trace.Put(ctx, processID, StageEmailInput, map[string]any{
		"content": formatting.Truncate(content, emailPreviewLimit),
	})

	prompt, err := prompts.Compose(prompts.StageEmail, content)
	if err != nil {
		return EmailContent{}, fmt.Errorf("compose email prompt: %w", err)
	}

	raw, err := a.extractor.Extract(ctx, prompt)
	if err != nil {
		return EmailContent{}, fmt.Errorf("extract email content: %w", err)
	}

	parsed, err := formatting.Parse[EmailContent](raw)
	if err == nil {
		err = parsed.Validate()
	}
	if err != nil {
		a.logger.Warn("email extraction rejected",
			"process_id", processID,
			"error", err,
		)
		a.trace.Put(ctx, processID, StageEmailError, map[string]any{
			"error":   err.Error(),
			"content": formatting.Truncate(content, 100),
		})
		a.dispatcher.LogAndClose(ctx, processID, map[string]any{
			"error":   "Email parsing failed",
			"details": err.Error(),
		})
		degraded := EmailContent{
			Sender:       "Unknown",
			Urgency:      UrgencyUnknown,
			IssueRequest: "Parsing failed",
			Tone:         ToneUnknown,
		}
		a.trace.Put(ctx, processID, StageEmailOutput, degraded)
		return degraded, nil
	}

	a.trace.Put(ctx, processID, StageEmailOutput, parsed)

	a.logger.Info("email processed",
		"process_id", processID,
		"sender", parsed.Sender,
		"urgency", parsed.Urgency,
		"tone", parsed.Tone,
	)

	switch {
	case parsed.Tone == ToneEscalation && parsed.Urgency == UrgencyHigh:
		a.dispatcher.CRMEscalation(ctx, processID, parsed)
	case parsed.Tone == ToneThreatening:
		a.dispatcher.RiskAlert(ctx, processID, parsed)
	default:
		a.dispatcher.LogAndClose(ctx, processID, parsed)
	}

	return parsed, nil
}
