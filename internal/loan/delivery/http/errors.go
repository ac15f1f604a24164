package http

import (
	"errors"
	"net/http"

	"library-loans/internal/loan"
	pkgErrors "library-loans/pkg/errors"
)

// mapError translates saga errors into HTTP errors from pkg/errors. The
// reason string is exposed; anything outside the taxonomy becomes a 500.
func (h *handler) mapError(err error) error {
	var sagaErr *loan.SagaError
	reason := err.Error()
	if errors.As(err, &sagaErr) {
		reason = sagaErr.Reason
	}

	switch {
	case errors.Is(err, loan.ErrResourceNotFound):
		return pkgErrors.NewHTTPErrorWithKind(http.StatusNotFound, loan.KindResourceNotFound, reason)
	case errors.Is(err, loan.ErrInvalidState):
		return pkgErrors.NewHTTPErrorWithKind(http.StatusConflict, loan.KindInvalidState, reason)
	case errors.Is(err, loan.ErrCommunicationFailure):
		return pkgErrors.NewHTTPErrorWithKind(http.StatusServiceUnavailable, loan.KindCommunicationFailure, reason)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
