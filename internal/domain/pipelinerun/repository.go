package pipelinerun

import "context"

type Repository interface {
	UpsertEvent(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Run, error)
}

// Locker guards against overlapping runs across processes.
type Locker interface {
	// TryAcquire returns ok=false without blocking when another holder
	// owns the lock.
	TryAcquire(ctx context.Context) (lease Lease, ok bool, err error)
}

type Lease interface {
	Release(ctx context.Context) error
}
