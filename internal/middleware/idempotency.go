package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	pkgErrors "library-loans/pkg/errors"
	"library-loans/pkg/response"
)

const (
	HeaderIdempotencyKey      = "Idempotency-Key"
	HeaderIdempotencyReplayed = "X-Idempotency-Replayed"

	defaultIdempotencyTTL = 24 * time.Hour
	idempotencyKeyPrefix  = "idempotency:"
	pendingMarker         = "pending"
)

var errRequestInProgress = pkgErrors.NewHTTPError(http.StatusConflict, "a request with this idempotency key is still in progress")

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type idempotencyStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func newIdempotencyStore(rdb redis.Cmdable, ttl time.Duration) *idempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &idempotencyStore{rdb: rdb, ttl: ttl}
}

// reserve claims key. It returns (nil, true) when the caller owns the key,
// or the stored outcome (possibly the pending marker) when it does not.
func (s *idempotencyStore) reserve(ctx context.Context, key string) ([]byte, bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, pendingMarker, s.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if ok {
		return nil, true, nil
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; treat as still running.
		return []byte(pendingMarker), false, nil
	}
	return raw, false, err
}

// release drops an unfinished reservation so the key can be retried.
func (s *idempotencyStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *idempotencyStore) save(ctx context.Context, key string, resp cachedResponse) error {
	raw, err := jsoniter.Marshal(resp)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, s.ttl).Err()
}

// bodyWriter tees the response body so it can be stored after the handler runs.
type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first outcome recorded for an Idempotency-Key
// instead of running a non-idempotent handler again. Every final response is
// stored, including failures, because a failure after the local commit may
// still have changed state. Requests without the header, or when Redis is
// unreachable, pass straight through.
func (m Middleware) Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if m.idempotency == nil || key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		storeKey := idempotencyKeyPrefix + c.Request.Method + ":" + c.Request.URL.Path + ":" + key

		raw, owner, err := m.idempotency.reserve(ctx, storeKey)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Idempotency reserve: %v", err)
			c.Next()
			return
		}

		if !owner {
			if string(raw) == pendingMarker {
				response.Error(c, errRequestInProgress)
				c.Abort()
				return
			}
			var cached cachedResponse
			if err := jsoniter.Unmarshal(raw, &cached); err != nil {
				m.l.Errorf(ctx, "middleware.Idempotency decode: %v", err)
				response.InternalError(c, err)
				c.Abort()
				return
			}
			m.l.Infof(ctx, "middleware.Idempotency: replaying %d for key %s", cached.Status, key)
			c.Header(HeaderIdempotencyReplayed, "true")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		// A panicking handler never reaches save; free the key on the way out.
		completed := false
		defer func() {
			if completed {
				return
			}
			if err := m.idempotency.release(context.WithoutCancel(ctx), storeKey); err != nil {
				m.l.Errorf(ctx, "middleware.Idempotency release: %v", err)
			}
		}()

		bw := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = bw
		c.Next()
		completed = true

		resp := cachedResponse{
			Status:      bw.Status(),
			ContentType: bw.Header().Get("Content-Type"),
			Body:        bw.body.Bytes(),
		}
		// The request context may already be cancelled; the outcome must still be recorded.
		if err := m.idempotency.save(context.WithoutCancel(ctx), storeKey, resp); err != nil {
			m.l.Errorf(ctx, "middleware.Idempotency save: %v", err)
		}
	}
}
