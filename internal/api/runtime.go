package api

import (
	"github.com/docket-systems/docket/internal/config"
	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/infrastructure"
	"github.com/docket-systems/docket/pkg/retry"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Model   *extraction.Config
	Actions *config.ActionsConfig
	Retry   retry.Policy
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Trace:     infra.Trace,
			Archive:   infra.Archive,
		},
		Model:   &cfg.Model,
		Actions: &cfg.Actions,
		Retry:   cfg.Retry.Policy(),
	}
}
