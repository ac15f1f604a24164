package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	loanHTTP "library-loans/internal/loan/delivery/http"
	catalogRepo "library-loans/internal/loan/repository/catalog"
	loanRepo "library-loans/internal/loan/repository/postgre"
	loanUC "library-loans/internal/loan/usecase"
	"library-loans/internal/middleware"
)

// setupLoanDomain initializes the loan domain and registers its routes.
//
//  1. Repositories: local loan store + remote catalog accessor
//  2. UseCase:      the issue/return sagas
//  3. HTTP Handler
//  4. Routes:       /api/v1/loans
func (srv HTTPServer) setupLoanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	repo := loanRepo.New(srv.postgresDB, srv.l)

	client := catalogRepo.NewClient(srv.catalog.AccountURL, srv.catalog.ItemURL, srv.catalog.Timeout)
	catalog := catalogRepo.New(client, srv.l,
		catalogRepo.WithRetry(srv.catalog.RetryAttempts, srv.catalog.RetryDelay),
		catalogRepo.WithMetrics(srv.metrics),
	)

	// 2. UseCase
	uc := loanUC.New(srv.l, repo, catalog, srv.metrics)

	// 3. HTTP Handler
	h := loanHTTP.New(srv.l, uc)

	// 4. Routes
	loanHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Loan domain registered (accounts=%s items=%s)", srv.catalog.AccountURL, srv.catalog.ItemURL)
	return nil
}
