package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bharatwebpro/platform-api/internal/auth"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/repository"
)

type stubUserFinder struct {
	byEmail map[string]*entity.User
	byPhone map[string]*entity.User
}

func (f *stubUserFinder) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *stubUserFinder) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (*AuthService, *auth.JWTManager, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	hashStr := string(hash)
	email := "admin@bharatwebpro.in"
	phone := "9990001111"
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        &email,
		Phone:        &phone,
		PasswordHash: &hashStr,
		Role:         entity.RoleAdmin,
	}
	finder := &stubUserFinder{
		byEmail: map[string]*entity.User{email: user},
		byPhone: map[string]*entity.User{phone: user},
	}
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(finder, tokens, zerolog.Nop()), tokens, user
}

func TestLoginWithEmail(t *testing.T) {
	svc, tokens, user := newTestAuthService(t)

	token, err := svc.Login(context.Background(), "Admin@BharatWebPro.in", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := tokens.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != user.ID.String() {
		t.Errorf("subject = %s, want user ID", claims.Subject)
	}
	if claims.Role != entity.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", claims.Role)
	}
}

func TestLoginWithPhone(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "999-000-1111", "s3cret"); err != nil {
		t.Fatalf("Login with formatted phone: %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{"wrong password", "admin@bharatwebpro.in", "nope"},
		{"unknown email", "ghost@bharatwebpro.in", "s3cret"},
		{"unknown phone", "8880001111", "s3cret"},
		{"empty identifier", "", "s3cret"},
		{"empty password", "admin@bharatwebpro.in", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginPasswordlessOwnerAccount(t *testing.T) {
	phone := "7770001111"
	owner := &entity.User{ID: uuid.New(), Name: "Owner", Phone: &phone, Role: entity.RoleClient}
	finder := &stubUserFinder{byPhone: map[string]*entity.User{phone: owner}}
	svc := NewAuthService(finder, auth.NewJWTManager("test-secret", time.Hour), zerolog.Nop())

	_, err := svc.Login(context.Background(), phone, "anything")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
