package serverutils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hri-companion-be/internal/config"
	"hri-companion-be/internal/pkg/apperror"
)

// AccessClaims is the decoded payload of a session token.
type AccessClaims struct {
	UserID string
	Email  string
	Role   string
}

// CreateAccessToken issues a signed HS256 token carrying the user claims.
// Expiry defaults to 60 minutes via config.
func CreateAccessToken(cfg *config.JWTConfig, userID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(cfg.AccessTokenMinutes) * time.Minute).Unix(),
	}
	if cfg.Issuer != "" {
		claims["iss"] = cfg.Issuer
	}
	if cfg.Audience != "" {
		claims["aud"] = cfg.Audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", apperror.Internal("failed to sign access token").WithCause(err)
	}
	return signed, nil
}

// ParseAccessToken validates signature, expiry and (when configured)
// issuer/audience, and returns the canonical claims.
func ParseAccessToken(cfg *config.JWTConfig, tokenStr string) (*AccessClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("invalid or expired authentication token").WithCause(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || email == "" || role == "" {
		return nil, apperror.Unauthorized("malformed authentication token payload")
	}

	return &AccessClaims{UserID: sub, Email: email, Role: role}, nil
}
