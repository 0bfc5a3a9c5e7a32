package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type stubUserAdminService struct {
	users     []entity.User
	createErr error
}

func (s *stubUserAdminService) CreateUser(_ context.Context, req dto.CreateUserRequest) (*entity.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	email := req.Email
	return &entity.User{ID: uuid.New(), Name: req.Name, Email: &email, Role: entity.RoleAdmin}, nil
}

func (s *stubUserAdminService) ListUsers(_ context.Context) ([]entity.User, error) {
	return s.users, nil
}

func TestUserAdminList(t *testing.T) {
	email := "ops@bharatwebpro.in"
	svc := &stubUserAdminService{users: []entity.User{
		{ID: uuid.New(), Name: "Ops", Email: &email, Role: entity.RoleAdmin},
	}}
	h := NewUserAdminHandler(svc)

	rec := performJSON(t, h.List, http.MethodGet, "/admin/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), email) {
		t.Errorf("body = %s", rec.Body.String())
	}
	// The password hash must never appear in a response.
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("body leaks password field: %s", rec.Body.String())
	}
}

func TestUserAdminCreate(t *testing.T) {
	h := NewUserAdminHandler(&stubUserAdminService{})

	rec := performJSON(t, h.Create, http.MethodPost, "/admin/users",
		`{"name":"Ops","email":"ops@bharatwebpro.in","password":"long-enough","role":"ADMIN"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestUserAdminCreateDuplicate(t *testing.T) {
	h := NewUserAdminHandler(&stubUserAdminService{createErr: service.ErrUserExists})

	rec := performJSON(t, h.Create, http.MethodPost, "/admin/users",
		`{"name":"Dup","email":"dup@bharatwebpro.in","password":"long-enough"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
