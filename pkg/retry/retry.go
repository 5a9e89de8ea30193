// Package retry provides a bounded retry wrapper with exponential backoff.
package retry

import (
	"context"
	"time"
)

// Policy bounds a retried operation: Attempts total tries, with the wait
// before each retry starting at BaseDelay and doubling.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

// Do invokes fn up to p.Attempts times, waiting between attempts. The error
// from the final attempt is returned unwrapped so callers can inspect it.
// Context cancellation during a backoff wait aborts with ctx.Err().
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		zero T
		err  error
	)

	delay := p.BaseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		var out T
		out, err = fn(ctx)
		if err == nil {
			return out, nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return zero, err
}
