package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process read cache keyed by "namespace:key". Gold tables
// only change when a pipeline run finishes, so entries live for ttl or until
// Purge.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  resilience.Group[any]
	now     func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key joins a namespace and its parts into a cache key.
func Key(namespace string, parts ...any) string {
	var b strings.Builder
	b.WriteString(namespace)
	for _, part := range parts {
		b.WriteByte(':')
		fmt.Fprint(&b, part)
	}
	return b.String()
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if s == nil || key == "" {
		return
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Invalidate drops every key in the namespace.
func (s *Store) Invalidate(_ context.Context, namespace string) int {
	if s == nil || namespace == "" {
		return 0
	}

	prefix := namespace + ":"
	removed := 0
	s.mu.Lock()
	for key := range s.entries {
		if key == namespace || strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}

// Purge empties the cache, returning how many entries were dropped.
func (s *Store) Purge(_ context.Context) int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	removed := len(s.entries)
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return removed
}

func (s *Store) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return Stats{Entries: n, Hits: s.hits.Load(), Misses: s.misses.Load()}
}

func (s *Store) getOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	return value, err
}

// Load returns the cached value for key or fills it with loader. Concurrent
// misses on the same key share one loader call. A nil store always loads.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		v, err := loader(ctx)
		return v, err
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return loader(ctx)
	}
	return typed, nil
}
