package controller

import (
	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActionPlanController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	ShowByIdea(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type actionPlanController struct {
	actionPlanService service.IActionPlanService
}

func NewActionPlanController(actionPlanService service.IActionPlanService) IActionPlanController {
	return &actionPlanController{
		actionPlanService: actionPlanService,
	}
}

func (c *actionPlanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/action-plan/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("idea/:ideaId", c.ShowByIdea)
	h.Put(":id", c.Update)
	h.Post(":id/complete", c.Complete)
}

func (c *actionPlanController) Generate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GenerateActionPlanRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.actionPlanService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Success generate action plan", res)
}

func (c *actionPlanController) ShowByIdea(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	ideaId, _ := uuid.Parse(ctx.Params("ideaId"))

	res, err := c.actionPlanService.ShowByIdea(ctx.Context(), userId, ideaId)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show action plan", res)
}

func (c *actionPlanController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateActionPlanRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.actionPlanService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update action plan", res)
}

func (c *actionPlanController) Complete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.actionPlanService.Complete(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success complete action plan", res)
}
