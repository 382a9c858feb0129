package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"hri-companion-be/internal/config"
)

// Locals keys populated by the JWT middleware.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// JwtMiddleware validates the Bearer token on every authenticated request
// and stores the claims in the request locals.
func JwtMiddleware(cfg *config.JWTConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "unauthorized",
				"message": "missing bearer token",
			})
		}

		claims, err := ParseAccessToken(cfg, authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "unauthorized",
				"message": "invalid or expired token",
			})
		}

		ctx.Locals(LocalUserID, claims.UserID)
		ctx.Locals(LocalEmail, claims.Email)
		ctx.Locals(LocalRole, claims.Role)
		return ctx.Next()
	}
}
