package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/repository"
)

// ErrUserExists signals a staff account with that email or phone is taken.
var ErrUserExists = errors.New("user already exists")

var validRoles = map[string]bool{
	entity.RoleClient:     true,
	entity.RoleAdmin:      true,
	entity.RoleSuperAdmin: true,
}

type userStore interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

// UserService manages platform accounts.
type UserService struct {
	users  userStore
	logger zerolog.Logger
}

func NewUserService(users userStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.With().Str("component", "users").Logger(),
	}
}

// CreateUser registers a staff account with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*entity.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = entity.RoleClient
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Name:         name,
		Email:        &email,
		PasswordHash: &hashStr,
		Role:         role,
	}
	if phone := digitsOnly(req.Phone); phone != "" {
		user.Phone = &phone
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Stringer("userId", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// ListUsers returns all platform accounts.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.users.List(ctx)
}
