package catalog

import (
	"context"
	"time"
)

// withRetry runs call up to r.retryAttempts times. An explicit not-found is
// final and never retried; every other failure is retried after
// attempt*retryDelay.
func (r *implRepository) withRetry(ctx context.Context, target, op string, call func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * r.retryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return lastErr
			}
			r.l.Debugf(ctx, "%s retrying %s %s (attempt %d): %v", r.dsn("withRetry"), op, target, attempt+1, lastErr)
		}

		lastErr = call(ctx)
		switch {
		case lastErr == nil:
			r.metrics.IncRemoteRequest(target, op, outcomeOK)
			return nil
		case IsNotFound(lastErr):
			r.metrics.IncRemoteRequest(target, op, outcomeNotFound)
			return lastErr
		default:
			r.metrics.IncRemoteRequest(target, op, outcomeUnavailable)
		}
	}

	return lastErr
}
