package middleware

import (
	"time"

	"github.com/redis/go-redis/v9"

	"library-loans/pkg/log"
)

// Config carries the optional edge protections. A zero RateLimitPerMin
// disables rate limiting; a nil Redis disables idempotency replay.
type Config struct {
	RateLimitPerMin int
	MaxTrackedPeers int

	Redis          redis.Cmdable
	IdempotencyTTL time.Duration
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	idempotency *idempotencyStore
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin, cfg.MaxTrackedPeers)
	}
	if cfg.Redis != nil {
		mw.idempotency = newIdempotencyStore(cfg.Redis, cfg.IdempotencyTTL)
	}
	return mw
}
