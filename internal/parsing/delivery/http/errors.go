package http

import (
	"net/http"

	"finbook/internal/parsing"
	pkgErrors "finbook/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case parsing.ErrAllProvidersExhausted:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "all AI providers exhausted")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
