package http

import (
	"errors"
	"net/http"

	"library-loans/internal/item"
	pkgErrors "library-loans/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, item.ErrDuplicateISBN):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, item.ErrNegativeStock):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
