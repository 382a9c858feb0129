package contract

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
)

type IUserChildRepository interface {
	CreateLink(ctx context.Context, link *entity.UserChild) error
	HasLink(ctx context.Context, userId, childId uuid.UUID) (bool, error)
	ListChildIDs(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
}
