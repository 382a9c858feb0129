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

type IChildController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type childController struct {
	service service.IChildService
	jwtCfg  *config.JWTConfig
}

func NewChildController(service service.IChildService, jwtCfg *config.JWTConfig) IChildController {
	return &childController{service: service, jwtCfg: jwtCfg}
}

func (c *childController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/children")
	h.Use(serverutils.JwtMiddleware(c.jwtCfg))
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":childId", c.Show)
}

func (c *childController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateChildRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body").WithCause(err)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	res, err := c.service.CreateChild(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse("Success create child profile", res))
}

func (c *childController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	childId, err := uuid.Parse(ctx.Params("childId"))
	if err != nil {
		return apperror.Validation("invalid child id")
	}

	res, err := c.service.GetChild(ctx.Context(), userId, childId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get child profile", res))
}

func (c *childController) GetAll(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListChildren(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all children", res))
}
