package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/pkg/validate"
	"go.uber.org/zap"
)

const validationFailed = "validation failed"

var (
	notFound = []error{
		errs.ErrItemNotFound,
		errs.ErrLoanNotFound,
		errs.ErrMemberNotFound,
		errs.ErrApplicationNotFound,
		errs.ErrHoldNotFound,
		errs.ErrNoActiveHolds,
		errs.ErrShelfEntryNotFound,
	}
	badRequest = []error{
		errs.ErrItemAvailable,
		errs.ErrItemUnavailable,
		errs.ErrItemReserved,
		errs.ErrItemNotCheckedOut,
		errs.ErrItemMismatch,
		errs.ErrAlreadyReturned,
		errs.ErrMemberNotApproved,
		errs.ErrApplicationNotPending,
		errs.ErrMissingPinHash,
		errs.ErrEmailAlreadyMember,
		errs.ErrEmailApplicationPending,
		errs.ErrDuplicateHold,
		errs.ErrInvalidHoldTransition,
		errs.ErrNotQueueHead,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail maps a service error onto an HTTP error. Unknown errors are logged
// and hidden behind a generic message.
func (h *Handler) fail(c echo.Context, op string, err error) error {
	switch {
	case isAny(err, notFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case isAny(err, badRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrTooManyAttempts):
		return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
	}
	h.log.Error(op,
		zap.Error(err),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// bind decodes the body into req and validates it. Validation failures
// carry per-field rules in the response body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		if fields, ok := validate.FieldErrors(err); ok {
			return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
				Message: validationFailed,
				Errors:  fields,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
