package mapper

import (
	"fmt"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/pkg/sheets"
)

// SessionColumns is the fixed column order of the sessions worksheet.
var SessionColumns = []string{
	"session_id",
	"child_id",
	"mood",
	"environment",
	"situation",
	"prompt",
	"created_at",
}

func SessionToRecord(session *entity.Session) map[string]interface{} {
	return map[string]interface{}{
		"session_id":  session.Id.String(),
		"child_id":    session.ChildId.String(),
		"mood":        string(session.Mood),
		"environment": session.Environment,
		"situation":   session.Situation,
		"prompt":      session.Prompt,
		"created_at":  session.CreatedAt,
	}
}

func SessionFromRecord(record map[string]string) (*entity.Session, error) {
	id, err := uuid.Parse(record["session_id"])
	if err != nil {
		return nil, fmt.Errorf("parse session_id: %w", err)
	}
	childId, err := uuid.Parse(record["child_id"])
	if err != nil {
		return nil, fmt.Errorf("parse child_id: %w", err)
	}

	mood, err := entity.ParseMood(record["mood"])
	if err != nil {
		return nil, err
	}

	createdAt, err := sheets.ParseTimestamp(record["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &entity.Session{
		Id:          id,
		ChildId:     childId,
		Mood:        mood,
		Environment: record["environment"],
		Situation:   record["situation"],
		Prompt:      record["prompt"],
		CreatedAt:   createdAt,
	}, nil
}
