package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
)

// PipelineLockKey is the advisory lock id every pipeline process contends on.
const PipelineLockKey int64 = 0x63726963 // "cric"

// AdvisoryRunLock holds a session-level pg advisory lock on a dedicated
// connection for as long as the lease lives.
type AdvisoryRunLock struct {
	db  *sqlx.DB
	key int64
}

func NewAdvisoryRunLock(db *sqlx.DB, key int64) *AdvisoryRunLock {
	if key == 0 {
		key = PipelineLockKey
	}
	return &AdvisoryRunLock{db: db, key: key}
}

func (l *AdvisoryRunLock) TryAcquire(ctx context.Context) (pipelinerun.Lease, bool, error) {
	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, false, classify(fmt.Errorf("reserve lock connection: %w", err))
	}

	var acquired bool
	if err := conn.GetContext(ctx, &acquired, "SELECT pg_try_advisory_lock($1)", l.key); err != nil {
		_ = conn.Close()
		return nil, false, classify(fmt.Errorf("try advisory lock key=%d: %w", l.key, err))
	}
	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}
	return &advisoryLease{conn: conn, key: l.key}, true, nil
}

type advisoryLease struct {
	once sync.Once
	conn *sqlx.Conn
	key  int64
	err  error
}

func (l *advisoryLease) Release(ctx context.Context) error {
	l.once.Do(func() {
		defer func() { _ = l.conn.Close() }()
		if _, err := l.conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", l.key); err != nil {
			l.err = classify(fmt.Errorf("advisory unlock key=%d: %w", l.key, err))
		}
	})
	return l.err
}
