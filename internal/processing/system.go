package processing

import "context"

// System defines the public contract for intake processing operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	Process(ctx context.Context, input Input) (*Result, error)
	Trace(ctx context.Context, processID string) (map[string]any, error)
}
