package trace

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/docket-systems/docket/pkg/lifecycle"
)

// memoryStore keeps serialized entries in a mutex-guarded map for the
// process lifetime. Values are stored in the same textual form the postgres
// backend persists, so the two modes are interchangeable to callers.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	logger  *slog.Logger
}

func newMemoryStore(logger *slog.Logger) *memoryStore {
	return &memoryStore{
		entries: make(map[string]string),
		logger:  logger,
	}
}

func (s *memoryStore) Mode() Mode {
	return ModeMemory
}

func (s *memoryStore) Put(_ context.Context, processID, stage string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("trace write failed", "stage", stage, "error", err)
		return
	}

	s.mu.Lock()
	s.entries[Key(processID, stage)] = string(data)
	s.mu.Unlock()
}

func (s *memoryStore) Get(_ context.Context, processID, stage string) (any, bool) {
	s.mu.RLock()
	raw, ok := s.entries[Key(processID, stage)]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return decode(raw), true
}

func (s *memoryStore) GetAll(_ context.Context, processID string) map[string]any {
	prefix := processID + ":"
	out := make(map[string]any)

	s.mu.RLock()
	for key, raw := range s.entries {
		if stage, ok := strings.CutPrefix(key, prefix); ok {
			out[stage] = decode(raw)
		}
	}
	s.mu.RUnlock()

	return out
}

func (s *memoryStore) Start(*lifecycle.Coordinator) error {
	return nil
}

// decode parses a stored value back into structured form. Values that no
// longer parse are returned as their raw text so trace retrieval never
// errors on malformed historical data.
func decode(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
