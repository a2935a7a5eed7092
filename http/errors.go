package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
)

// errorStatusCode maps domain error codes to HTTP status codes.
func errorStatusCode(code string) int {
	switch code {
	case tackle.ENOTFOUND:
		return http.StatusNotFound
	case tackle.EINVALID:
		return http.StatusBadRequest
	case tackle.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case tackle.EFORBIDDEN:
		return http.StatusForbidden
	case tackle.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse represents the JSON error response format.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ScheduleConflictResponse is the 409 payload for a scheduling conflict. It
// carries the existing pending booking dates so the client can show them and
// offer a forced re-submission.
type ScheduleConflictResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	SerialNumber  string   `json:"serial_number"`
	ExistingDates []string `json:"existing_dates"`
}

// HandleError converts domain errors to appropriate HTTP responses.
// It logs internal errors and returns user-safe messages.
func HandleError(c echo.Context, logger *slog.Logger, err error) error {
	// Scheduling conflicts carry structured data the client needs.
	var conflict *tackle.ScheduleConflictError
	if errors.As(err, &conflict) {
		dates := make([]string, len(conflict.ExistingDates))
		for i, d := range conflict.ExistingDates {
			dates[i] = d.Format("2006-01-02")
		}
		return c.JSON(http.StatusConflict, ScheduleConflictResponse{
			Error:         tackle.ECONFLICT,
			Message:       "This equipment already has a pending scheduled inspection.",
			SerialNumber:  conflict.SerialNumber,
			ExistingDates: dates,
		})
	}

	code := tackle.ErrorCode(err)
	message := tackle.ErrorMessage(err)
	fields := tackle.ErrorFields(err)
	status := errorStatusCode(code)

	// Log internal errors with full details
	if code == tackle.EINTERNAL {
		logger.Error("internal error",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
			slog.String("method", c.Request().Method),
		)
		// Don't expose internal error details to clients
		message = "An internal error occurred."
	}

	return c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
		Fields:  fields,
	})
}

// isTackleError checks if the error is a tackle.Error type.
func isTackleError(err error) bool {
	var e *tackle.Error
	return errors.As(err, &e)
}
