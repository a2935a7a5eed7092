package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// ActorIDHeader and ActorNameHeader identify the already-authenticated
	// operator. They are set by the fronting gateway; this service does not
	// authenticate.
	ActorIDHeader   = "X-Actor-ID"
	ActorNameHeader = "X-Actor-Name"

	// Default timeout for database operations.
	DefaultTimeout = 5 * time.Second
)

// registerMiddleware sets up all middleware for the server.
func (s *Server) registerMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Logger middleware with request ID
	s.echo.Use(s.requestLoggerMiddleware())

	// CORS middleware (configure as needed)
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, ActorIDHeader, ActorNameHeader},
	}))

	// Actor identification from gateway headers
	s.echo.Use(s.actorMiddleware())

	// Custom error handler
	s.echo.HTTPErrorHandler = s.httpErrorHandler
}

// requestLoggerMiddleware creates a middleware that logs requests with context.
func (s *Server) requestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			// Create request-scoped logger
			logger := s.logger.With(
				slog.String("request_id", requestID),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
			)
			c.Set("logger", logger)

			ctx := tackle.NewContextWithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)

			// Log request completion
			duration := time.Since(start)
			status := c.Response().Status

			logAttrs := []any{
				slog.Int("status", status),
				slog.Duration("duration", duration),
			}

			if err != nil {
				logAttrs = append(logAttrs, slog.String("error", err.Error()))
				logger.Error("request failed", logAttrs...)
			} else if status >= 500 {
				logger.Error("request completed with server error", logAttrs...)
			} else if status >= 400 {
				logger.Warn("request completed with client error", logAttrs...)
			} else {
				logger.Info("request completed", logAttrs...)
			}

			return err
		}
	}
}

// actorMiddleware attaches the operator identified by the gateway headers to
// the request context. Requests without the headers proceed anonymously;
// handlers that need an actor check for one explicitly.
func (s *Server) actorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idStr := c.Request().Header.Get(ActorIDHeader)
			if idStr == "" {
				return next(c)
			}

			id, err := uuid.Parse(idStr)
			if err != nil {
				return tackle.Invalid("Invalid actor ID header")
			}

			actor := &tackle.Actor{
				ID:   id,
				Name: c.Request().Header.Get(ActorNameHeader),
			}
			ctx := tackle.NewContextWithActor(c.Request().Context(), actor)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// httpErrorHandler handles errors and returns appropriate responses.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Check if it's an Echo HTTP error
	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, map[string]any{"error": he.Message})
		return
	}

	// Wrap unexpected errors so clients never see raw internals
	if !isTackleError(err) && !isConflictError(err) {
		err = tackle.Internal("An unexpected error occurred", err)
	}
	_ = HandleError(c, s.logger, err)
}

// isConflictError checks if the error is a scheduling conflict.
func isConflictError(err error) bool {
	var conflict *tackle.ScheduleConflictError
	return errors.As(err, &conflict)
}

// getRequestLogger retrieves the request-scoped logger from context.
func (s *Server) getRequestLogger(c echo.Context) *slog.Logger {
	if logger, ok := c.Get("logger").(*slog.Logger); ok {
		return logger
	}
	return s.logger
}
