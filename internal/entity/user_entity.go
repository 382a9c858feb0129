package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleParent    UserRole = "parent"
	UserRoleTherapist UserRole = "therapist"
)

// ParseUserRole fails loudly on malformed stored data instead of coercing
// to a default.
func ParseUserRole(value string) (UserRole, error) {
	switch UserRole(value) {
	case UserRoleParent, UserRoleTherapist:
		return UserRole(value), nil
	default:
		return "", fmt.Errorf("invalid user role: %q", value)
	}
}

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}
