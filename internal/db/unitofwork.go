package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// PgxUnitOfWork is the pgx-backed UnitOfWork. It pins one pooled
// connection and runs the whole import inside a single transaction; the
// CLI layer decides whether that transaction commits or rolls back.
//
// Thread-Safety: NOT safe for concurrent use. The pipelines are
// sequential.
type PgxUnitOfWork struct {
	conn *pgxpool.Conn
	tx   pgx.Tx
}

// BeginUnitOfWork acquires a connection from the pool and opens the
// run-scoped transaction.
func BeginUnitOfWork(ctx context.Context, pool *pgxpool.Pool) (*PgxUnitOfWork, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &PgxUnitOfWork{conn: conn, tx: tx}, nil
}

// Exec runs one statement inside the run transaction.
func (u *PgxUnitOfWork) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return u.tx.Exec(ctx, sql, args...)
}

// Commit commits the run transaction and releases the connection. A failed
// commit invalidates every row of the run; a compensating rollback is
// attempted before the error is surfaced.
func (u *PgxUnitOfWork) Commit(ctx context.Context) error {
	defer u.release()
	if err := u.tx.Commit(ctx); err != nil {
		// pgx reports ErrTxClosed when the server already aborted the
		// transaction; either way the work is gone.
		_ = u.tx.Rollback(ctx)
		return fmt.Errorf("%w: %w", ltlimport.ErrCommitFailed, err)
	}
	return nil
}

// Rollback discards the run transaction and releases the connection.
// Safe to call after Commit; the second close is a no-op error that is
// swallowed, so callers can defer it unconditionally.
func (u *PgxUnitOfWork) Rollback(ctx context.Context) error {
	defer u.release()
	if err := u.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return err
	}
	return nil
}

func (u *PgxUnitOfWork) release() {
	if u.conn != nil {
		u.conn.Release()
		u.conn = nil
	}
}

var _ ltlimport.UnitOfWork = (*PgxUnitOfWork)(nil)
