package http

import (
	"github.com/gin-gonic/gin"

	"library-loans/internal/loan"
	"library-loans/pkg/log"
)

// Handler is the public interface for the loan HTTP delivery layer.
type Handler interface {
	Issue(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Return(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc loan.UseCase
}

// New creates a new HTTP handler for the loan domain.
func New(l log.Logger, uc loan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
