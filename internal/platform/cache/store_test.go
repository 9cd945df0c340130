package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_ConcurrentMissesShareOneLoader(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []string{"Chennai Super Kings", "Mumbai Indians"}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			teams, err := Load(context.Background(), store, Key("standings"), loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(teams) != 2 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestLoad_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("db down")
		}
		return 42, nil
	}

	if _, err := Load(context.Background(), store, "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	v, err := Load(context.Background(), store, "k", loader)
	if err != nil || v != 42 {
		t.Fatalf("expected reload after error, got %d %v", v, err)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 4, 1, 19, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "latest", "102")
	if _, ok := store.Get(context.Background(), "latest"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "latest"); ok {
		t.Fatalf("expected expired entry")
	}

	stats := store.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStore_InvalidateAndPurge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, Key("leaderboard", "batsmen", 20), 1)
	store.Set(ctx, Key("leaderboard", "bowlers", 20), 2)
	store.Set(ctx, Key("leaderboards"), 3)
	store.Set(ctx, Key("standings"), 4)

	if removed := store.Invalidate(ctx, "leaderboard"); removed != 2 {
		t.Fatalf("expected 2 leaderboard keys removed, got %d", removed)
	}
	if _, ok := store.Get(ctx, Key("leaderboards")); !ok {
		t.Fatalf("namespace invalidation must not match longer namespaces")
	}
	if removed := store.Purge(ctx); removed != 2 {
		t.Fatalf("expected purge of 2, got %d", removed)
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	if got := Key("h2h", "Chennai Super Kings", "Mumbai Indians"); got != "h2h:Chennai Super Kings:Mumbai Indians" {
		t.Fatalf("unexpected key %q", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
