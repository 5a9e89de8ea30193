// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"context"
	"net/http"

	"github.com/docket-systems/docket/internal/config"
	"github.com/docket-systems/docket/internal/infrastructure"
	"github.com/docket-systems/docket/pkg/middleware"
	"github.com/docket-systems/docket/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(ctx, runtime)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
