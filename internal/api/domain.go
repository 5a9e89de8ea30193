package api

import (
	"context"

	"github.com/docket-systems/docket/internal/actions"
	"github.com/docket-systems/docket/internal/agents"
	"github.com/docket-systems/docket/internal/classify"
	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/processing"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Processing processing.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(ctx context.Context, runtime *Runtime) (*Domain, error) {
	extractor, err := extraction.New(ctx, runtime.Model, runtime.Logger)
	if err != nil {
		return nil, err
	}

	dispatcher := actions.NewDispatcher(
		runtime.Trace,
		runtime.Logger,
		runtime.Actions.LatencyDuration(),
	)

	classifier := classify.New(runtime.Trace, extractor, runtime.Logger)

	emailAgent := agents.NewEmailAgent(
		runtime.Trace,
		extractor,
		dispatcher,
		runtime.Logger,
	)

	webhookAgent, err := agents.NewWebhookAgent(
		runtime.Trace,
		dispatcher,
		runtime.Logger,
	)
	if err != nil {
		return nil, err
	}

	pdfAgent := agents.NewPDFAgent(
		runtime.Trace,
		extractor,
		dispatcher,
		agents.NewPDFTextExtractor(runtime.Logger),
		runtime.Logger,
	)

	processingSystem := processing.New(
		runtime.Trace,
		runtime.Archive,
		classifier,
		emailAgent,
		webhookAgent,
		pdfAgent,
		runtime.Retry,
		runtime.Logger,
	)

	return &Domain{
		Processing: processingSystem,
	}, nil
}
