package trace

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/docket-systems/docket/pkg/database"
	"github.com/docket-systems/docket/pkg/lifecycle"
)

// postgresStore persists entries to the trace_entries table, one row per
// (process_id, stage) with last-write-wins upsert semantics. The payload
// column is plain text holding serialized JSON, tolerating any malformed
// rows written by earlier versions.
type postgresStore struct {
	db     database.System
	logger *slog.Logger
}

func newPostgresStore(db database.System, logger *slog.Logger) *postgresStore {
	return &postgresStore{
		db:     db,
		logger: logger,
	}
}

func (s *postgresStore) Mode() Mode {
	return ModePostgres
}

func (s *postgresStore) Put(ctx context.Context, processID, stage string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("trace write failed", "stage", stage, "error", err)
		return
	}

	const q = `
		INSERT INTO trace_entries (process_id, stage, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (process_id, stage) DO UPDATE SET
			payload = EXCLUDED.payload,
			recorded_at = NOW()`

	if _, err := s.db.Connection().ExecContext(ctx, q, processID, stage, string(data)); err != nil {
		s.logger.Error(
			"trace write failed",
			"process_id", processID,
			"stage", stage,
			"error", err,
		)
	}
}

func (s *postgresStore) Get(ctx context.Context, processID, stage string) (any, bool) {
	const q = `SELECT payload FROM trace_entries WHERE process_id = $1 AND stage = $2`

	var raw string
	err := s.db.Connection().QueryRowContext(ctx, q, processID, stage).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("trace read failed", "stage", stage, "error", err)
		}
		return nil, false
	}

	return decode(raw), true
}

func (s *postgresStore) GetAll(ctx context.Context, processID string) map[string]any {
	const q = `SELECT stage, payload FROM trace_entries WHERE process_id = $1`

	out := make(map[string]any)

	rows, err := s.db.Connection().QueryContext(ctx, q, processID)
	if err != nil {
		s.logger.Error("trace read failed", "process_id", processID, "error", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var stage, raw string
		if err := rows.Scan(&stage, &raw); err != nil {
			s.logger.Error("trace scan failed", "process_id", processID, "error", err)
			continue
		}
		out[stage] = decode(raw)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("trace read failed", "process_id", processID, "error", err)
	}

	return out
}

func (s *postgresStore) Start(lc *lifecycle.Coordinator) error {
	return s.db.Start(lc)
}
