// Package trace records per-process decision trails. Every stage of a
// processing run writes an entry keyed by (process_id, stage); entries are
// best-effort telemetry, so storage failures are logged and never surfaced
// to the caller.
package trace

import (
	"context"
	"log/slog"

	"github.com/docket-systems/docket/pkg/database"
	"github.com/docket-systems/docket/pkg/lifecycle"
)

// Mode identifies the backing store selected at startup.
type Mode string

const (
	// ModePostgres persists entries to the shared PostgreSQL store.
	ModePostgres Mode = "postgres"
	// ModeMemory holds entries in-process. Data is lost on restart and not
	// shared across instances; selected only as a degraded fallback or by
	// explicit configuration.
	ModeMemory Mode = "memory"
)

// System is the trace store contract. Put overwrites any prior entry for the
// same (processID, stage) pair; write and read failures are swallowed after
// logging so tracing can never fail the primary operation.
type System interface {
	// Mode reports the backend selected at startup.
	Mode() Mode
	// Put records payload under (processID, stage), last write wins.
	Put(ctx context.Context, processID, stage string, payload any)
	// Get returns the entry for (processID, stage), or false when absent.
	Get(ctx context.Context, processID, stage string) (any, bool)
	// GetAll returns every entry for processID keyed by stage, in no
	// particular order.
	GetAll(ctx context.Context, processID string) map[string]any
	// Start registers lifecycle hooks for the backend.
	Start(lc *lifecycle.Coordinator) error
}

// New selects the trace backend once at startup. With backend "auto" the
// database is probed within its connect timeout and the in-memory store is
// substituted when unreachable; "postgres" demands connectivity; "memory"
// skips the database entirely. The selection is logged so operators can see
// when durability is degraded.
func New(ctx context.Context, cfg *Config, db database.System, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "trace")

	switch cfg.Backend {
	case BackendMemory:
		logger.Warn("trace store running in-memory; entries are lost on restart")
		return newMemoryStore(logger), nil

	case BackendPostgres:
		if err := db.Ping(ctx); err != nil {
			return nil, err
		}
		logger.Info("trace store backed by postgres")
		return newPostgresStore(db, logger), nil

	default: // BackendAuto
		if err := db.Ping(ctx); err != nil {
			logger.Warn(
				"trace database unreachable, falling back to in-memory store",
				"error", err,
			)
			return newMemoryStore(logger), nil
		}
		logger.Info("trace store backed by postgres")
		return newPostgresStore(db, logger), nil
	}
}

// Key returns the composite storage key for a trace entry.
func Key(processID, stage string) string {
	return processID + ":" + stage
}
