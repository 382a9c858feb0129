package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChildRequest struct {
	Nickname        string `json:"nickname" validate:"required,min=1,max=50"`
	Age             *int   `json:"age" validate:"required,gte=0,lte=120"`
	CommLevel       string `json:"comm_level" validate:"required,oneof=low medium high"`
	Personality     string `json:"personality" validate:"required,oneof=shy active calm curious"`
	TriggersRaw     string `json:"triggers_raw" validate:"required,min=1,max=4000"`
	InterestsRaw    string `json:"interests_raw" validate:"required,min=1,max=4000"`
	TargetSkillsRaw string `json:"target_skills_raw" validate:"required,min=1,max=4000"`
}

type ChildCreateResponse struct {
	ChildId      uuid.UUID `json:"child_id"`
	Nickname     string    `json:"nickname"`
	Age          int       `json:"age"`
	Triggers     string    `json:"triggers"`
	Interests    string    `json:"interests"`
	TargetSkills string    `json:"target_skills"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ChildDetailResponse struct {
	ChildId         uuid.UUID `json:"child_id"`
	Nickname        string    `json:"nickname"`
	Age             int       `json:"age"`
	CommLevel       string    `json:"comm_level"`
	Personality     string    `json:"personality"`
	TriggersRaw     string    `json:"triggers_raw"`
	Triggers        string    `json:"triggers"`
	InterestsRaw    string    `json:"interests_raw"`
	Interests       string    `json:"interests"`
	TargetSkillsRaw string    `json:"target_skills_raw"`
	TargetSkills    string    `json:"target_skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
