package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Common HTTP response helpers.

// Respond sends a JSON response with the given status code and data.
func Respond(c echo.Context, status int, data any) error {
	return c.JSON(status, data)
}

// RespondOK sends a 200 OK response with the given data.
func RespondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with the given data.
func RespondCreated(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// RespondNoContent sends a 204 No Content response.
func RespondNoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RespondSuccess sends a success response with an optional message.
func RespondSuccess(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: message,
	})
}
