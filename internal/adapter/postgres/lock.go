package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// ingestLockKey identifies the ingestion run in pg_try_advisory_lock.
const ingestLockKey int64 = 0x7261646973746174

// AcquireRunLock takes a session-level advisory lock on a dedicated pool
// connection. The returned release func unlocks and returns the connection.
// A lock held by another session yields domain.ErrRunInProgress.
func AcquireRunLock(ctx context.Context, pool *pgxpool.Pool) (func(), error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire lock connection: %w", err)
	}

	var ok bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, ingestLockKey).Scan(&ok); err != nil {
		conn.Release()
		return nil, fmt.Errorf("try advisory lock: %w", err)
	}
	if !ok {
		conn.Release()
		return nil, fmt.Errorf("advisory lock %d: %w", ingestLockKey, domain.ErrRunInProgress)
	}

	release := func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, ingestLockKey)
		conn.Release()
	}
	return release, nil
}
