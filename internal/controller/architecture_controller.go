package controller

import (
	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArchitectureController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	ShowByActionPlan(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	GenerateModules(ctx *fiber.Ctx) error
	ListModules(ctx *fiber.Ctx) error
	UpdateModuleStatus(ctx *fiber.Ctx) error
}

type architectureController struct {
	architectureService service.IArchitectureService
}

func NewArchitectureController(architectureService service.IArchitectureService) IArchitectureController {
	return &architectureController{
		architectureService: architectureService,
	}
}

func (c *architectureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/architecture/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("action-plan/:planId", c.ShowByActionPlan)
	h.Put("modules/:id/status", c.UpdateModuleStatus)
	h.Put(":id", c.Update)
	h.Post(":id/complete", c.Complete)
	h.Post(":id/modules/generate", c.GenerateModules)
	h.Get(":id/modules", c.ListModules)
}

func (c *architectureController) Generate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GenerateArchitectureRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.architectureService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Success generate architecture", res)
}

func (c *architectureController) ShowByActionPlan(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	planId, _ := uuid.Parse(ctx.Params("planId"))

	res, err := c.architectureService.ShowByActionPlan(ctx.Context(), userId, planId)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show architecture", res)
}

func (c *architectureController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateArchitectureRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.architectureService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update architecture", res)
}

func (c *architectureController) Complete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.architectureService.Complete(ctx.Context(), userId, id); err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success complete architecture", nil)
}

func (c *architectureController) GenerateModules(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.architectureService.GenerateModules(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Success generate development modules", res)
}

func (c *architectureController) ListModules(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.architectureService.ListModules(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list development modules", res)
}

func (c *architectureController) UpdateModuleStatus(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateModuleStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	if err := c.architectureService.UpdateModuleStatus(ctx.Context(), userId, &req); err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update module status", nil)
}
