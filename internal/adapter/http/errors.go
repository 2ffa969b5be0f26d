package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/covenant"
	"navlend-backend/internal/domain/drawdown"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/notification"
	drawdownUC "navlend-backend/internal/usecase/drawdown"
	facilityUC "navlend-backend/internal/usecase/facility"
	navreportUC "navlend-backend/internal/usecase/navreport"
)

// writeError maps domain sentinel errors to HTTP status codes. Anything
// unrecognized is a 500 with a generic body; the real error is for logs,
// not clients.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})

	case errors.Is(err, facility.ErrNotFound),
		errors.Is(err, covenant.ErrNotFound),
		errors.Is(err, drawdown.ErrNotFound),
		errors.Is(err, notification.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, drawdown.ErrAlreadyDecided),
		errors.Is(err, drawdown.ErrPendingExists),
		errors.Is(err, drawdown.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, covenant.ErrInvalidOperator),
		errors.Is(err, facility.ErrClosed),
		errors.Is(err, drawdown.ErrExceedsCommitment),
		errors.Is(err, facilityUC.ErrInvalidInput),
		errors.Is(err, navreportUC.ErrInvalidInput),
		errors.Is(err, drawdownUC.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bindAndValidate binds the JSON body and runs struct validation, writing
// the error response itself. Returns false when the request was rejected.
func bindAndValidate(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		return false
	}
	if err := c.Validate(req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
		return false
	}
	return true
}
