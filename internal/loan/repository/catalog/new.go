package catalog

import (
	"fmt"
	"time"

	"library-loans/internal/loan/repository"
	"library-loans/internal/metrics"
	"library-loans/pkg/log"
)

const (
	targetAccount = "account"
	targetItem    = "item"

	opFetch  = "fetch"
	opUpdate = "update"

	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
)

type implRepository struct {
	client        *Client
	l             log.Logger
	metrics       metrics.Recorder
	retryAttempts int
	retryDelay    time.Duration
}

// Option configures the catalog repository.
type Option func(*implRepository)

// WithRetry enables bounded retry with linear backoff for calls whose outcome
// could not be confirmed. attempts counts the first call; values below 1 are ignored.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(r *implRepository) {
		if attempts >= 1 {
			r.retryAttempts = attempts
		}
		if delay >= 0 {
			r.retryDelay = delay
		}
	}
}

// WithMetrics reports every remote attempt to rec.
func WithMetrics(rec metrics.Recorder) Option {
	return func(r *implRepository) {
		if rec != nil {
			r.metrics = rec
		}
	}
}

// New creates the HTTP-backed CatalogRepository used by the loan saga.
// Without options every call is attempted exactly once.
func New(client *Client, l log.Logger, opts ...Option) repository.CatalogRepository {
	if client == nil {
		panic("loan/repository/catalog: client is required")
	}
	r := &implRepository{
		client:        client,
		l:             l,
		metrics:       metrics.Nop{},
		retryAttempts: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("loan/repository/catalog.%s", method)
}
