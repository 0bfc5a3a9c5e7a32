package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bharatwebpro/platform-api/internal/auth"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/repository"
)

// ErrInvalidCredentials is returned for any failed login attempt. The cause
// (unknown account, wrong password, password-less account) is deliberately
// not distinguished in the error.
var ErrInvalidCredentials = errors.New("invalid credentials")

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
}

// AuthService handles credential verification and token issuance.
type AuthService struct {
	users  userFinder
	tokens *auth.JWTManager
	logger zerolog.Logger
}

func NewAuthService(users userFinder, tokens *auth.JWTManager, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Login verifies the identifier/password pair and issues an access token.
// The identifier is an email address when it contains '@', a phone number
// otherwise.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.users.FindByPhone(ctx, digitsOnly(identifier))
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	// Lead-intake owner accounts carry no password and cannot log in yet.
	if user.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}
	token, err := s.tokens.GenerateToken(user.ID.String(), phone, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Stringer("userId", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, nil
}
