package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"library-loans/config"
	"library-loans/internal/metrics"
	"library-loans/pkg/log"
)

// Service selects which domains a binary serves.
type Service string

const (
	ServiceLoans   Service = "loans"
	ServiceCatalog Service = "catalog"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	service     Service

	// Infrastructure
	postgresDB  *sqlx.DB
	redisClient *redis.Client
	metrics     *metrics.Metrics

	// Loan domain
	catalog config.CatalogConfig

	// Edge protection
	rateLimit   config.RateLimitConfig
	idempotency config.IdempotencyConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Service     Service

	PostgresDB  *sqlx.DB
	RedisClient *redis.Client // optional; enables idempotency replay
	Metrics     *metrics.Metrics

	Catalog     config.CatalogConfig
	RateLimit   config.RateLimitConfig
	Idempotency config.IdempotencyConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		service:     cfg.Service,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		metrics:     cfg.Metrics,
		catalog:     cfg.Catalog,
		rateLimit:   cfg.RateLimit,
		idempotency: cfg.Idempotency,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.metrics == nil {
		srv.metrics = metrics.New()
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	switch srv.service {
	case ServiceLoans:
		if srv.catalog.AccountURL == "" || srv.catalog.ItemURL == "" {
			return errors.New("catalog account and item urls are required")
		}
	case ServiceCatalog:
	default:
		return errors.New("unknown service")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
