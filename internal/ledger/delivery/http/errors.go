package http

import (
	"net/http"

	"finbook/internal/ledger"
	pkgErrors "finbook/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case ledger.ErrAccountNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "account not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
