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

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	LatestForChild(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
	jwtCfg  *config.JWTConfig
}

func NewSessionController(service service.ISessionService, jwtCfg *config.JWTConfig) ISessionController {
	return &sessionController{service: service, jwtCfg: jwtCfg}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Use(serverutils.JwtMiddleware(c.jwtCfg))
	h.Post("", c.Create)
	h.Get(":sessionId", c.Show)

	// Latest session lives under the child resource.
	r.Get("/children/:childId/sessions/latest", serverutils.JwtMiddleware(c.jwtCfg), c.LatestForChild)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body").WithCause(err)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return apperror.Validation("invalid session id")
	}

	res, err := c.service.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) LatestForChild(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	childId, err := uuid.Parse(ctx.Params("childId"))
	if err != nil {
		return apperror.Validation("invalid child id")
	}

	res, err := c.service.GetLatestForChild(ctx.Context(), userId, childId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get latest session", res))
}
