package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type userAdminService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// UserAdminHandler exposes account management endpoints for administrators.
type UserAdminHandler struct {
	users userAdminService
}

func NewUserAdminHandler(users userAdminService) *UserAdminHandler {
	return &UserAdminHandler{users: users}
}

// List handles GET /admin/users.
func (h *UserAdminHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list users")
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(&user))
	}
	return Success(c, http.StatusOK, responses)
}

// Create handles POST /admin/users.
func (h *UserAdminHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.CreateUser(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return Error(c, http.StatusConflict, "user already exists")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusCreated, toUserResponse(user))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:   user.ID.String(),
		Name: user.Name,
		Role: user.Role,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp
}
