package contract

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
)

type IChildRepository interface {
	Create(ctx context.Context, child *entity.Child) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	// Update exists at the repository level; no service currently rewrites
	// keyword fields after creation.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Child, error)
}
