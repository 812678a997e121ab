// Package retry provides automatic retry with exponential backoff for
// transient database connection failures.
//
// Error classification and backoff are pluggable. The
// PostgreSQLErrorClassifier recognizes transient PostgreSQL and network
// errors; ExponentialBackoff implements capped exponential delays with
// jitter. Executor ties the two together:
//
//	classifier := retry.NewPostgreSQLErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return connect(ctx)
//	})
//
// Executor is safe for concurrent use; WithOnRetry returns a new
// independent instance.
package retry
