package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"library-loans/config"
	"library-loans/config/postgre"
	"library-loans/config/redis"
	_ "library-loans/docs" // Swagger docs
	"library-loans/internal/httpserver"
	"library-loans/internal/metrics"
	"library-loans/pkg/log"
)

// @title       Library Loans API
// @description Loan orchestration over the remote account and item stores: issue, return, list and detail.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Library Loans API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres (loan records)
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	// 4. Redis (idempotency replay, optional)
	var redisClient *goredis.Client
	if cfg.Idempotency.Enabled {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis not available, idempotency replay disabled: %v", err)
			redisClient = nil
		} else {
			defer redis.Disconnect(redisClient)
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Service:     httpserver.ServiceLoans,
		PostgresDB:  db,
		RedisClient: redisClient,
		Metrics:     metrics.New(),
		Catalog:     cfg.Catalog,
		RateLimit:   cfg.RateLimit,
		Idempotency: cfg.Idempotency,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
