package ltlimport

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector abstracts the mechanics of establishing a connection pool.
// Implementations differ by authentication method (standard password,
// AWS IAM, Azure Entra ID, Google Cloud SQL IAM).
type Connector interface {
	// Connect establishes a connection pool to the target database.
	// The caller owns the returned pool and must Close() it.
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}
