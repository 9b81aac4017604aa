package controller

import (
	"strconv"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIdeaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Improve(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Related(ctx *fiber.Ctx) error
}

type ideaController struct {
	ideationService service.IIdeationService
}

func NewIdeaController(ideationService service.IIdeationService) IIdeaController {
	return &ideaController{
		ideationService: ideationService,
	}
}

func (c *ideaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/idea/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/improve", c.Improve)
	h.Post(":id/complete", c.Complete)
	h.Delete(":id", c.Delete)
	h.Get(":id/related", c.Related)
}

func (c *ideaController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateIdeaRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.ideationService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Success create idea", res)
}

func (c *ideaController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.ideationService.List(ctx.Context(), userId)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list ideas", res)
}

func (c *ideaController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.ideationService.Show(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show idea", res)
}

func (c *ideaController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateIdeaRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.ideationService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update idea", res)
}

func (c *ideaController) Improve(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.ideationService.Improve(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success improve idea", res)
}

func (c *ideaController) Complete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.ideationService.Complete(ctx.Context(), userId, id)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success complete idea", res)
}

func (c *ideaController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.ideationService.Delete(ctx.Context(), userId, id); err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success delete idea", nil)
}

func (c *ideaController) Related(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	limit, err := strconv.Atoi(ctx.Query("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		limit = 5
	}

	res, err := c.ideationService.FindRelated(ctx.Context(), userId, id, limit)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success find related ideas", res)
}

// currentUserId reads the user id the JWT middleware stored on the request.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
