package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hri-companion-be/internal/config"
	"hri-companion-be/internal/dto"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/pkg/serverutils"
	"hri-companion-be/internal/pkg/validation"
	"hri-companion-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	jwtCfg  *config.JWTConfig
}

func NewAuthController(service service.IAuthService, jwtCfg *config.JWTConfig) IAuthController {
	return &authController{service: service, jwtCfg: jwtCfg}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/me", serverutils.JwtMiddleware(c.jwtCfg), c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body").WithCause(err)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body").WithCause(err)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current user", res))
}

// currentUserId reads the authenticated user id placed in locals by the
// JWT middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(serverutils.LocalUserID).(string)
	if !ok {
		return uuid.Nil, apperror.Unauthorized("missing authenticated user")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("invalid authenticated user id")
	}
	return userId, nil
}
