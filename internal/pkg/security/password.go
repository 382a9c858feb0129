package security

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hri-companion-be/internal/pkg/apperror"
)

const minPasswordLength = 8

// HashPassword trims and bcrypt-hashes a raw password. Short passwords are
// rejected before hashing.
func HashPassword(plain string) (string, error) {
	normalized := strings.TrimSpace(plain)
	if len(normalized) < minPasswordLength {
		return "", apperror.Validation("password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Internal("failed to hash password").WithCause(err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the raw password matches the stored hash.
func VerifyPassword(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(plain)))
	return err == nil
}
