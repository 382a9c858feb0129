package contract

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
)

type ISessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// GetLatestByChildID returns (nil, nil) when the child has no sessions.
	GetLatestByChildID(ctx context.Context, childId uuid.UUID) (*entity.Session, error)
}
