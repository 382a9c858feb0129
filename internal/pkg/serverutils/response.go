package serverutils

import "github.com/gofiber/fiber/v2"

func SuccessResponse[T any](message string, data T) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	}
}

func CreatedResponse[T any](message string, data T) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusCreated,
		"message": message,
		"data":    data,
	}
}
