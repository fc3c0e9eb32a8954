package http

import (
	"net/http"

	"finbook/internal/scheduledtask"
	pkgErrors "finbook/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case scheduledtask.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "scheduled task not found")
	case scheduledtask.ErrAccountNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "account not found")
	case scheduledtask.ErrInvalidSchedule:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid schedule")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
