package repository

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueViolation checks for a unique constraint failure, covering both
// sqlite and postgres wording
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value")
}

// withRetry runs a write operation, retrying transient lock errors with
// backoff. Non-lock errors abort immediately.
func withRetry(ctx context.Context, op func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isLockError(err) {
			return err // repeater will retry this
		}
		return &criticalError{err: err}
	})
}
