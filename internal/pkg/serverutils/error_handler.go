package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/pkg/logger"
)

var statusByCode = map[apperror.Code]int{
	apperror.CodeValidation:      fiber.StatusBadRequest,
	apperror.CodeNotFound:        fiber.StatusNotFound,
	apperror.CodeConflict:        fiber.StatusConflict,
	apperror.CodeUnauthorized:    fiber.StatusUnauthorized,
	apperror.CodeForbidden:       fiber.StatusForbidden,
	apperror.CodeExternalService: fiber.StatusServiceUnavailable,
	apperror.CodeInternal:        fiber.StatusInternalServerError,
}

// ErrorHandlerMiddleware is the single place where domain errors become
// status-coded JSON responses.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr := apperror.As(err); appErr != nil {
			status, ok := statusByCode[appErr.Code]
			if !ok {
				status = fiber.StatusInternalServerError
			}
			if status >= fiber.StatusInternalServerError {
				log.Error("http", appErr.Message, map[string]interface{}{
					"code":  string(appErr.Code),
					"path":  ctx.Path(),
					"cause": appErr.Error(),
				})
			}
			body := fiber.Map{
				"code":    string(appErr.Code),
				"message": appErr.Message,
			}
			if appErr.Details != nil {
				body["details"] = appErr.Details
			}
			return ctx.Status(status).JSON(body)
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    "internal_error",
				"message": fiberErr.Message,
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"cause": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    "internal_error",
			"message": "an unexpected error occurred",
		})
	}
}
