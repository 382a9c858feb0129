package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ChildId     uuid.UUID `json:"child_id" validate:"required"`
	Mood        string    `json:"mood" validate:"required,oneof=calm happy anxious uncomfortable angry tired"`
	Environment string    `json:"environment" validate:"required,environment"`
	Situation   string    `json:"situation" validate:"required,min=1,max=800"`
}

type SessionCreateResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionDetailResponse struct {
	SessionId   uuid.UUID `json:"session_id"`
	ChildId     uuid.UUID `json:"child_id"`
	Mood        string    `json:"mood"`
	Environment string    `json:"environment"`
	Situation   string    `json:"situation"`
	Prompt      string    `json:"prompt"`
	CreatedAt   time.Time `json:"created_at"`
}
