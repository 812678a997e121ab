package ltlimport

import "time"

// ErrorClassifier determines whether an error is transient (worth retrying)
// or fatal. Used by connectors to retry flaky connection establishment.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the operation
	// may succeed on retry.
	IsTransient(err error) bool
}

// BackoffStrategy computes the delay between retry attempts.
type BackoffStrategy interface {
	// NextDelay returns the delay before the given 0-based retry attempt.
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts.
	// Negative means unlimited; zero means no retries.
	MaxAttempts() int
}
