package ltlimport

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// UnitOfWork is the run-scoped database handle. A pipeline acquires exactly
// one unit of work, issues every statement of the run through it, and
// releases it on every exit path: Commit on success, Rollback on failure.
//
// There is no per-row transaction boundary. A statement that fails mid-run
// is counted and logged, but a crash between the route-table clear and the
// final commit can leave the target partially loaded. That risk is accepted
// and documented, not worked around.
//
// Thread-Safety: NOT safe for concurrent use. The pipelines are strictly
// sequential by design.
type UnitOfWork interface {
	// Exec executes a statement within the run's transaction.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// Commit commits the outstanding work. After Commit the unit of work
	// must not be used.
	Commit(ctx context.Context) error

	// Rollback abandons the outstanding work. Safe to call after a failed
	// Commit; implementations must tolerate an already-closed transaction.
	Rollback(ctx context.Context) error
}
