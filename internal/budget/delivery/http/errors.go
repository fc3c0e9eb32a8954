package http

import (
	"net/http"

	"finbook/internal/budget"
	pkgErrors "finbook/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case budget.ErrDuplicateBudget:
		return pkgErrors.NewHTTPError(http.StatusConflict, "budget already exists for this category and month")
	case budget.ErrBudgetNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "budget not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
