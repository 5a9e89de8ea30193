package agents

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/formatting"
)

// Trace stages written by the webhook agent.
const (
	StageWebhookInput  = "json_agent_input"
	StageWebhookOutput = "json_agent_output"
)

const webhookPreviewLimit = 200

//go:embed webhook_schema.json
var webhookSchema string

// allowedEvents are the webhook event types accepted without anomaly.
var allowedEvents = []string{"order_created", "user_signed_up", "payment_failed"}

// WebhookAgent validates JSON webhook payloads against the expected schema
// and reports anomalies. It is deterministic and never consults the model.
type WebhookAgent struct {
	trace      trace.System
	dispatcher *actions.Dispatcher
	schema     *jsonschema.Schema
	logger     *slog.Logger
}

// NewWebhookAgent compiles the webhook schema and initializes the agent.
func NewWebhookAgent(
	ts trace.System,
	dispatcher *actions.Dispatcher,
	logger *slog.Logger,
) (*WebhookAgent, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(webhookSchema))
	if err != nil {
		return nil, fmt.Errorf("parse webhook schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("webhook.json", doc); err != nil {
		return nil, fmt.Errorf("register webhook schema: %w", err)
	}

	schema, err := compiler.Compile("webhook.json")
	if err != nil {
		return nil, fmt.Errorf("compile webhook schema: %w", err)
	}

	return &WebhookAgent{
		trace:      ts,
		dispatcher: dispatcher,
		schema:     schema,
		logger:     logger.With("system", "agents", "agent", "webhook"),
	}, nil
}

// Process validates a webhook payload. Content that is not valid JSON raises
// an anomaly alert immediately. Valid JSON is checked against the webhook
// schema, the event type allowlist, and the timestamp presence rule; any
// violation marks the payload invalid and raises an anomaly alert, otherwise
// the payload is logged and closed.
func (a *WebhookAgent) Process(ctx context.Context, processID, content string) (WebhookResult, error) {
	a.trace.Put(ctx, processID, StageWebhookInput, map[string]any{
		"content": formatting.Truncate(content, webhookPreviewLimit),
	})

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(content))
	if err != nil {
		result := WebhookResult{
			IsValidSchema: false,
			Anomalies:     []string{fmt.Sprintf("JSON Decode Error: %v", err)},
		}
		a.trace.Put(ctx, processID, StageWebhookOutput, result)
		a.dispatcher.AnomalyAlert(ctx, processID, map[string]any{
			"reason":  "JSON_Decode_Error",
			"details": err.Error(),
		})
		return result, nil
	}

	valid := true
	var anomalies []string

	if err := a.schema.Validate(inst); err != nil {
		valid = false
		anomalies = append(anomalies, fmt.Sprintf("Schema Validation Error: %v", err))
	}

	parsed, _ := inst.(map[string]any)

	if valid {
		eventType, _ := parsed["event_type"].(string)
		if !slices.Contains(allowedEvents, eventType) {
			valid = false
			anomalies = append(anomalies, fmt.Sprintf("Unexpected event_type: %s", eventType))
		}
		timestamp, _ := parsed["timestamp"].(string)
		if timestamp == "" {
			valid = false
			anomalies = append(anomalies, "Timestamp field is missing or empty.")
		}
	}

	result := WebhookResult{
		IsValidSchema: valid,
		Anomalies:     anomalies,
		ParsedData:    parsed,
	}
	a.trace.Put(ctx, processID, StageWebhookOutput, result)

	if !valid {
		a.logger.Warn("webhook payload rejected",
			"process_id", processID,
			"anomalies", anomalies,
		)
		a.dispatcher.AnomalyAlert(ctx, processID, map[string]any{
			"reason":       "JSON_Schema_Mismatch",
			"anomalies":    anomalies,
			"data_preview": formatting.Truncate(content, webhookPreviewLimit),
		})
		return result, nil
	}

	a.logger.Info("webhook payload validated", "process_id", processID)
	a.dispatcher.LogAndClose(ctx, processID, map[string]any{
		"message": "JSON processed successfully",
		"data":    parsed,
	})

	return result, nil
}
