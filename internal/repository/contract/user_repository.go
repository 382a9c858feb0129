package contract

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
)

type IUserRepository interface {
	// Create appends the user as a new row. Email uniqueness is the
	// caller's responsibility.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	// Matching is case-sensitive and exact.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update merges the partial fields over the stored row
	// (read-modify-write, last-write-wins) and returns the merged user.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.User, error)
}
