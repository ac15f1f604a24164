package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-loans/internal/middleware"
	"library-loans/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.newMiddleware()

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) newMiddleware() middleware.Middleware {
	cfg := middleware.Config{}
	if srv.rateLimit.Enabled {
		cfg.RateLimitPerMin = srv.rateLimit.RequestsPerMin
		cfg.MaxTrackedPeers = srv.rateLimit.MaxTrackedPeers
	}
	if srv.idempotency.Enabled && srv.redisClient != nil {
		cfg.Redis = srv.redisClient
		cfg.IdempotencyTTL = srv.idempotency.TTL
	}
	return middleware.New(srv.l, cfg)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the domains served by this binary under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", mw.RateLimit())

	switch srv.service {
	case ServiceLoans:
		return srv.setupLoanDomain(ctx, api, mw)
	case ServiceCatalog:
		return srv.setupCatalogDomains(ctx, api)
	default:
		return fmt.Errorf("unknown service %q", srv.service)
	}
}
