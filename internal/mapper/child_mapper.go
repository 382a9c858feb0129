package mapper

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/pkg/sheets"
)

// ChildColumns is the fixed column order of the children worksheet.
var ChildColumns = []string{
	"child_id",
	"nickname",
	"age",
	"comm_level",
	"personality",
	"triggers_raw",
	"triggers",
	"interests_raw",
	"interests",
	"target_skills_raw",
	"target_skills",
	"created_at",
	"updated_at",
}

func ChildToRecord(child *entity.Child) map[string]interface{} {
	return map[string]interface{}{
		"child_id":          child.Id.String(),
		"nickname":          child.Nickname,
		"age":               strconv.Itoa(child.Age),
		"comm_level":        string(child.CommLevel),
		"personality":       string(child.Personality),
		"triggers_raw":      child.TriggersRaw,
		"triggers":          child.Triggers,
		"interests_raw":     child.InterestsRaw,
		"interests":         child.Interests,
		"target_skills_raw": child.TargetSkillsRaw,
		"target_skills":     child.TargetSkills,
		"created_at":        child.CreatedAt,
		"updated_at":        child.UpdatedAt,
	}
}

func ChildFromRecord(record map[string]string) (*entity.Child, error) {
	id, err := uuid.Parse(record["child_id"])
	if err != nil {
		return nil, fmt.Errorf("parse child_id: %w", err)
	}

	age, err := strconv.Atoi(record["age"])
	if err != nil {
		return nil, fmt.Errorf("parse age: %w", err)
	}

	commLevel, err := entity.ParseCommunicationLevel(record["comm_level"])
	if err != nil {
		return nil, err
	}
	personality, err := entity.ParsePersonality(record["personality"])
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

	return &entity.Child{
		Id:              id,
		Nickname:        record["nickname"],
		Age:             age,
		CommLevel:       commLevel,
		Personality:     personality,
		TriggersRaw:     record["triggers_raw"],
		Triggers:        record["triggers"],
		InterestsRaw:    record["interests_raw"],
		Interests:       record["interests"],
		TargetSkillsRaw: record["target_skills_raw"],
		TargetSkills:    record["target_skills"],
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
