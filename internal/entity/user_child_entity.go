package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserChild links a user as the owner/creator of a child profile.
// Many-to-many in shape, created one-to-many in practice.
type UserChild struct {
	UserId    uuid.UUID
	ChildId   uuid.UUID
	CreatedAt time.Time
}
