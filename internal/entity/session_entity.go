package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Mood string

const (
	MoodCalm          Mood = "calm"
	MoodHappy         Mood = "happy"
	MoodAnxious       Mood = "anxious"
	MoodUncomfortable Mood = "uncomfortable"
	MoodAngry         Mood = "angry"
	MoodTired         Mood = "tired"
)

func ParseMood(value string) (Mood, error) {
	switch Mood(value) {
	case MoodCalm, MoodHappy, MoodAnxious, MoodUncomfortable, MoodAngry, MoodTired:
		return Mood(value), nil
	default:
		return "", fmt.Errorf("invalid mood: %q", value)
	}
}

var (
	locationTokens = map[string]bool{"loc_indoor": true, "loc_outdoor": true}
	noiseTokens    = map[string]bool{"noise_quiet": true, "noise_moderate": true, "noise_noisy": true}
	crowdTokens    = map[string]bool{"crowd_alone": true, "crowd_few": true, "crowd_many": true}
)

// ValidateEnvironment enforces the fixed environment contract: exactly
// three comma-joined tokens, one location then one noise then one crowd
// value, in that order.
func ValidateEnvironment(value string) error {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}

	if len(tokens) != 3 {
		return fmt.Errorf("environment must contain exactly three tokens, got %d", len(tokens))
	}
	if !locationTokens[tokens[0]] {
		return fmt.Errorf("invalid location token: %q", tokens[0])
	}
	if !noiseTokens[tokens[1]] {
		return fmt.Errorf("invalid noise token: %q", tokens[1])
	}
	if !crowdTokens[tokens[2]] {
		return fmt.Errorf("invalid crowd token: %q", tokens[2])
	}
	return nil
}

// Session is immutable once created.
type Session struct {
	Id          uuid.UUID
	ChildId     uuid.UUID
	Mood        Mood
	Environment string
	Situation   string
	Prompt      string
	CreatedAt   time.Time
}
