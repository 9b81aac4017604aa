package controller

import (
	"strconv"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPropagationController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	VisitStage(ctx *fiber.Ctx) error
	Render(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

// propagationController exposes the session propagation state: the stepper
// badges, the highlight snapshot, and server-side fragment rendering.
type propagationController struct {
	propagationService service.IPropagationService
}

func NewPropagationController(propagationService service.IPropagationService) IPropagationController {
	return &propagationController{
		propagationService: propagationService,
	}
}

func (c *propagationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/propagation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("state", c.State)
	h.Post("visit/:stage", c.VisitStage)
	h.Post("render", c.Render)
	h.Delete("state", c.Reset)
}

func (c *propagationController) State(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res := c.propagationService.Snapshot(userId)
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show propagation state", res)
}

func (c *propagationController) VisitStage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	stage, err := strconv.Atoi(ctx.Params("stage"))
	if err != nil || stage < 1 || stage > 3 {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid stage", err)
	}

	res := c.propagationService.VisitStage(userId, stage)
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success visit stage", res)
}

func (c *propagationController) Render(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.RenderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.propagationService.Render(userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success render section", res)
}

func (c *propagationController) Reset(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	c.propagationService.ResetSession(userId)
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success reset propagation state", nil)
}
