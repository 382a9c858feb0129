package mapper

import (
	"hri-companion-be/internal/entity"
)

// UserChildColumns is the fixed column order of the user_children
// worksheet. user_id is the locator column; lookups by child use a scan.
var UserChildColumns = []string{
	"user_id",
	"child_id",
	"created_at",
}

func UserChildToRecord(link *entity.UserChild) map[string]interface{} {
	return map[string]interface{}{
		"user_id":    link.UserId.String(),
		"child_id":   link.ChildId.String(),
		"created_at": link.CreatedAt,
	}
}
