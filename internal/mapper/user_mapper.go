package mapper

import (
	"fmt"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/pkg/sheets"
)

// UserColumns is the fixed column order of the users worksheet.
var UserColumns = []string{
	"user_id",
	"email",
	"password_hash",
	"full_name",
	"role",
	"created_at",
	"updated_at",
	"last_login_at",
}

func UserToRecord(user *entity.User) map[string]interface{} {
	record := map[string]interface{}{
		"user_id":       user.Id.String(),
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"full_name":     user.FullName,
		"role":          string(user.Role),
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}
	if user.LastLoginAt != nil {
		record["last_login_at"] = *user.LastLoginAt
	}
	return record
}

func UserFromRecord(record map[string]string) (*entity.User, error) {
	id, err := uuid.Parse(record["user_id"])
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}

	role, err := entity.ParseUserRole(record["role"])
	if err != nil {
		return nil, err
	}

	createdAt, err := sheets.ParseTimestamp(record["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := sheets.ParseTimestamp(record["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	user := &entity.User{
		Id:           id,
		Email:        record["email"],
		PasswordHash: record["password_hash"],
		FullName:     record["full_name"],
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	if record["last_login_at"] != "" {
		lastLogin, err := sheets.ParseTimestamp(record["last_login_at"])
		if err != nil {
			return nil, fmt.Errorf("parse last_login_at: %w", err)
		}
		user.LastLoginAt = &lastLogin
	}
	return user, nil
}
