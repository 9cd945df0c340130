package resilience

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetry_StopsOnPermanentError(t *testing.T) {
	t.Parallel()

	attempts := 0
	permanent := errors.New("status=404")
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 3}, func(int) error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) || attempts != 1 {
		t.Fatalf("expected single attempt, got attempts=%d err=%v", attempts, err)
	}
}

func TestRetry_RetriesTransientUntilSuccess(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 2, Backoff: time.Millisecond}, func(attempt int) error {
		attempts++
		if attempt < 2 {
			return MarkTransient(fmt.Errorf("status=503"))
		}
		return nil
	})
	if err != nil || attempts != 3 {
		t.Fatalf("expected success on third attempt, got attempts=%d err=%v", attempts, err)
	}
}

func TestRetry_HonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, RetryPolicy{MaxRetries: 5, Backoff: time.Hour}, func(int) error {
		return MarkTransient(errors.New("timeout"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestGuard_OpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	g := NewGuard(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	fail := func() error { return fmt.Errorf("wrapped: %w", MarkTransient(errors.New("reset"))) }

	_ = g.Execute(fail)
	_ = g.Execute(fail)
	if g.State() != CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", g.State())
	}

	called := false
	err := g.Execute(func() error { called = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("open breaker must reject without calling, err=%v called=%v", err, called)
	}
}

func TestGuard_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	g := NewGuard(CircuitBreakerConfig{Enabled: false})
	for i := 0; i < 10; i++ {
		_ = g.Execute(func() error { return MarkTransient(errors.New("boom")) })
	}
	if g.State() != CircuitStateClosed {
		t.Fatalf("disabled guard must report closed")
	}
}
