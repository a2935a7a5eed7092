package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
)

// withTimeout creates a context with a timeout for handler operations.
func withTimeout(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), DefaultTimeout)
}

// parseUUID parses a UUID from a string, returning a domain error if invalid.
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, tackle.Invalid("Invalid ID format")
	}
	return id, nil
}

// requireParam extracts a required route parameter, returning error if empty.
func requireParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", tackle.Invalid("%s is required", name)
	}
	return value, nil
}

// requireUUIDParam extracts and parses a required UUID route parameter.
func requireUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	value, err := requireParam(c, name)
	if err != nil {
		return uuid.UUID{}, err
	}
	return parseUUID(value)
}

// parseDate parses a date from either a plain date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, tackle.Invalid("Invalid date format, expected YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}

// bind binds the request body to a struct and validates it.
func bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return tackle.Invalid("Invalid request body")
	}
	if err := c.Validate(v); err != nil {
		return err
	}
	return nil
}

// log returns the request-scoped logger.
func (s *Server) log(c echo.Context) *slog.Logger {
	return s.getRequestLogger(c)
}

// Health handlers
func (s *Server) handleHealthCheck(c echo.Context) error {
	return RespondOK(c, map[string]string{"status": "ok"})
}

func (s *Server) handleLivenessCheck(c echo.Context) error {
	return RespondOK(c, map[string]string{"status": "alive"})
}

func (s *Server) handleReadinessCheck(c echo.Context) error {
	return RespondOK(c, map[string]string{"status": "ready"})
}
