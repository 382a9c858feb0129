package events

import "time"

// Domain event types published on the audit topic.
const (
	TypeUserRegistered = "USER_REGISTERED"
	TypeUserLogin      = "USER_LOGIN"
	TypeChildCreated   = "CHILD_CREATED"
	TypeSessionCreated = "SESSION_CREATED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
