package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CommunicationLevel string

const (
	CommLevelLow    CommunicationLevel = "low"
	CommLevelMedium CommunicationLevel = "medium"
	CommLevelHigh   CommunicationLevel = "high"
)

func ParseCommunicationLevel(value string) (CommunicationLevel, error) {
	switch CommunicationLevel(value) {
	case CommLevelLow, CommLevelMedium, CommLevelHigh:
		return CommunicationLevel(value), nil
	default:
		return "", fmt.Errorf("invalid communication level: %q", value)
	}
}

type Personality string

const (
	PersonalityShy     Personality = "shy"
	PersonalityActive  Personality = "active"
	PersonalityCalm    Personality = "calm"
	PersonalityCurious Personality = "curious"
)

func ParsePersonality(value string) (Personality, error) {
	switch Personality(value) {
	case PersonalityShy, PersonalityActive, PersonalityCalm, PersonalityCurious:
		return Personality(value), nil
	default:
		return "", fmt.Errorf("invalid personality: %q", value)
	}
}

// Child is a profile for one child. The three raw/keyword field pairs are
// written once at creation and treated as immutable afterwards; keyword
// fields hold 1-7 lowercase underscore tokens, comma-joined.
type Child struct {
	Id              uuid.UUID
	Nickname        string
	Age             int
	CommLevel       CommunicationLevel
	Personality     Personality
	TriggersRaw     string
	Triggers        string
	InterestsRaw    string
	Interests       string
	TargetSkillsRaw string
	TargetSkills    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
