package actions

import (
	"context"
	"log/slog"
	"time"

	"github.com/docket-systems/docket/internal/trace"
)

// Dispatcher invokes simulated external actions and records each one in the
// trace store. It is stateless per call and safe for concurrent use. No real
// system is called: every action funnels through one simulated-call
// primitive that sleeps for a fixed latency and reports success. A real
// integration would replace that primitive and bring its own retry and
// circuit-breaking layer.
type Dispatcher struct {
	trace   trace.System
	logger  *slog.Logger
	latency time.Duration
}

// NewDispatcher creates a Dispatcher writing through to the given trace store.
func NewDispatcher(store trace.System, logger *slog.Logger, latency time.Duration) *Dispatcher {
	return &Dispatcher{
		trace:   store,
		logger:  logger.With("system", "actions"),
		latency: latency,
	}
}

// CRMEscalation escalates an urgent customer issue to the CRM system.
func (d *Dispatcher) CRMEscalation(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeCRMEscalation, details)
}

// RiskAlert raises a risk alert for threatening or high-value content.
func (d *Dispatcher) RiskAlert(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeRiskAlert, details)
}

// ComplianceFlag flags a document for compliance review.
func (d *Dispatcher) ComplianceFlag(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeComplianceFlag, details)
}

// SummaryGeneration requests downstream summary generation.
func (d *Dispatcher) SummaryGeneration(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeSummaryGeneration, details)
}

// LogAndClose records routine content and closes it out.
func (d *Dispatcher) LogAndClose(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeLogAndClose, details)
}

// AnomalyAlert raises an alert for malformed or anomalous input.
func (d *Dispatcher) AnomalyAlert(ctx context.Context, processID string, details any) Result {
	return d.simulate(ctx, processID, TypeAnomalyAlert, details)
}

func (d *Dispatcher) simulate(ctx context.Context, processID string, t Type, payload any) Result {
	d.logger.Info("dispatching action", "process_id", processID, "action", t)

	// stand-in for a real outbound call
	if d.latency > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(d.latency):
		}
	}

	result := successResult(t)
	d.trace.Put(ctx, processID, t.Stage(), Record{
		Payload: payload,
		Result:  result,
	})

	return result
}
