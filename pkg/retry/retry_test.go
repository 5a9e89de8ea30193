package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docket-systems/docket/pkg/retry"
)

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		got, err := retry.Do(ctx, retry.Policy{Attempts: 3}, func(context.Context) (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("Do error: %v", err)
		}
		if got != 42 {
			t.Errorf("got %d, want 42", got)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		p := retry.Policy{Attempts: 3, BaseDelay: time.Millisecond}
		got, err := retry.Do(ctx, p, func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("Do error: %v", err)
		}
		if got != "ok" {
			t.Errorf("got %q, want ok", got)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("returns final error after exhaustion", func(t *testing.T) {
		final := errors.New("persistent")
		calls := 0
		p := retry.Policy{Attempts: 3, BaseDelay: time.Millisecond}
		_, err := retry.Do(ctx, p, func(context.Context) (int, error) {
			calls++
			return 0, final
		})
		if !errors.Is(err, final) {
			t.Errorf("error = %v, want %v", err, final)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("zero attempts runs once", func(t *testing.T) {
		calls := 0
		_, err := retry.Do(ctx, retry.Policy{}, func(context.Context) (int, error) {
			calls++
			return 0, errors.New("boom")
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("context cancellation aborts backoff", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(context.Background())
		cancel()

		p := retry.Policy{Attempts: 3, BaseDelay: time.Minute}
		_, err := retry.Do(cancelCtx, p, func(context.Context) (int, error) {
			return 0, errors.New("transient")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
