package resilience

import (
	"context"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// ErrTransient marks failures worth retrying and worth counting against a
// circuit breaker.
var ErrTransient = errors.New("transient dependency failure")

// MarkTransient tags err so IsTransient reports true for it and anything
// wrapping it.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, ErrTransient)
}

func IsTransient(err error) bool {
	return err != nil && crerr.Is(err, ErrTransient)
}

// Guard runs calls through a circuit breaker when enabled.
type Guard struct {
	breaker *CircuitBreaker
	enabled bool
}

func NewGuard(cfg CircuitBreakerConfig) *Guard {
	return &Guard{
		breaker: NewCircuitBreaker(cfg),
		enabled: cfg.Enabled,
	}
}

// Execute returns ErrCircuitOpen without calling fn while the breaker is
// open. Only transient failures count against the breaker.
func (g *Guard) Execute(fn func() error) error {
	if g == nil || !g.enabled {
		return fn()
	}
	if err := g.breaker.Allow(); err != nil {
		return err
	}

	err := fn()
	g.breaker.Record(!IsTransient(err))
	return err
}

func (g *Guard) State() CircuitState {
	if g == nil || !g.enabled {
		return CircuitStateClosed
	}
	return g.breaker.State()
}

// RetryPolicy is a linear backoff: attempt n waits n*Backoff.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
}

// Retry calls fn until it succeeds, returns a non-transient error, or the
// policy is exhausted. The last error is returned.
func Retry(ctx context.Context, policy RetryPolicy, fn func(attempt int) error) error {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil || !IsTransient(lastErr) {
			return lastErr
		}
		if attempt == policy.MaxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * policy.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
