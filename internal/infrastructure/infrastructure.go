// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, trace storage, archival) that domain
// systems require.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/docket-systems/docket/internal/config"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/database"
	"github.com/docket-systems/docket/pkg/lifecycle"
	"github.com/docket-systems/docket/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, trace storage, and content archival. Archive is nil when no
// archive backend is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Trace     trace.System
	Archive   storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
// The trace backend is selected here: an explicit postgres backend demands a
// working database, while auto mode degrades to the in-memory store.
func New(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ts, err := buildTrace(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("trace init failed: %w", err)
	}

	var archive storage.System
	if cfg.Archive.Enabled() {
		archive, err = storage.New(&cfg.Archive, logger)
		if err != nil {
			return nil, fmt.Errorf("archive init failed: %w", err)
		}
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Trace:     ts,
		Archive:   archive,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Trace.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("trace start failed: %w", err)
	}
	if i.Archive != nil {
		if err := i.Archive.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("archive start failed: %w", err)
		}
	}
	return nil
}

func buildTrace(ctx context.Context, cfg *config.Config, logger *slog.Logger) (trace.System, error) {
	if cfg.Trace.Backend == trace.BackendMemory {
		return trace.New(ctx, &cfg.Trace, nil, logger)
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		if cfg.Trace.Backend == trace.BackendPostgres {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Warn("database init failed, trace store falling back to in-memory",
			"error", err,
		)
		return trace.New(ctx, &trace.Config{Backend: trace.BackendMemory}, nil, logger)
	}

	return trace.New(ctx, &cfg.Trace, db, logger)
}
