package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends data wrapped in the shared success envelope.
func Success(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// Error sends an error message wrapped in the shared error envelope.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: message})
}
