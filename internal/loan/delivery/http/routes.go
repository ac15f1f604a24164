package http

import (
	"github.com/gin-gonic/gin"

	"library-loans/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both sagas accept an Idempotency-Key header.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	loans := rg.Group("/loans")
	{
		loans.POST("", mw.Idempotency(), h.Issue)
		loans.GET("", h.List)
		loans.GET("/:id", h.Detail)
		loans.POST("/:id/return", mw.Idempotency(), h.Return)
	}
}
