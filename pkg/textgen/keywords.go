package textgen

import (
	"fmt"
	"strings"

	"hri-companion-be/internal/pkg/apperror"
)

const (
	KeywordDelimiter = ","
	KeywordMin       = 1
	KeywordMax       = 7
)

// NormalizeTokens canonicalizes free-text-derived tags: trim, lowercase,
// inner spaces to underscores, drop empties, de-duplicate preserving
// first-seen order. Idempotent.
func NormalizeTokens(tokens []string) []string {
	normalized := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(token)), " ", "_")
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		normalized = append(normalized, cleaned)
	}
	return normalized
}

// FormatKeywords normalizes tokens into the canonical comma-joined string
// and enforces the 1-7 token contract.
func FormatKeywords(tokens []string) (string, error) {
	normalized := NormalizeTokens(tokens)
	if len(normalized) < KeywordMin || len(normalized) > KeywordMax {
		return "", apperror.Validation(fmt.Sprintf(
			"keywords must contain between %d and %d items, got %d",
			KeywordMin, KeywordMax, len(normalized))).
			WithDetails(map[string]interface{}{"count": len(normalized)})
	}
	return strings.Join(normalized, KeywordDelimiter), nil
}

// SplitKeywords breaks a raw comma-separated response into tokens,
// dropping fragments that are empty after trimming.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, KeywordDelimiter)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
