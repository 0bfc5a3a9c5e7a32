package entity

import (
	"time"

	"github.com/google/uuid"
)

// User roles understood by the API.
const (
	RoleClient     = "CLIENT"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User is a platform account. Business owners created by lead intake carry
// only a name and phone; staff accounts carry email and a password hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash *string   `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
