package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type loginService interface {
	Login(ctx context.Context, identifier, password string) (string, error)
}

// AuthHandler exposes credential endpoints.
type AuthHandler struct {
	auth loginService
}

func NewAuthHandler(auth loginService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Identifier == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "identifier and password are required")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "login failed")
	}
	return Success(c, http.StatusOK, dto.LoginResponse{AccessToken: token})
}
