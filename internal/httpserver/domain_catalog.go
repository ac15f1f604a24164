package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "library-loans/internal/account/delivery/http"
	accountRepo "library-loans/internal/account/repository/postgre"
	accountUC "library-loans/internal/account/usecase"
	itemHTTP "library-loans/internal/item/delivery/http"
	itemRepo "library-loans/internal/item/repository/postgre"
	itemUC "library-loans/internal/item/usecase"
)

// setupCatalogDomains initializes the item and account stores and registers
// /api/v1/items and /api/v1/accounts.
func (srv HTTPServer) setupCatalogDomains(ctx context.Context, api *gin.RouterGroup) error {
	items := itemUC.New(itemRepo.New(srv.postgresDB, srv.l), srv.l)
	itemHTTP.RegisterRoutes(api, itemHTTP.New(srv.l, items))

	accounts := accountUC.New(accountRepo.New(srv.postgresDB, srv.l), srv.l)
	accountHTTP.RegisterRoutes(api, accountHTTP.New(srv.l, accounts))

	srv.l.Infof(ctx, "Item and account domains registered")
	return nil
}
