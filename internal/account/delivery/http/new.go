package http

import (
	"github.com/gin-gonic/gin"

	"library-loans/internal/account"
	"library-loans/pkg/log"
)

// Handler is the public interface for the account HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Deactivate(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc account.UseCase
}

// New creates a new HTTP handler for the account domain.
func New(l log.Logger, uc account.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
