package controller

import (
	"strconv"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	EditSection(ctx *fiber.Ctx) error
	StageHistory(ctx *fiber.Ctx) error
	GlobalChat(ctx *fiber.Ctx) error
	GlobalChatHistory(ctx *fiber.Ctx) error
}

type editorController struct {
	editorService service.IEditorService
	chatService   service.IChatService
}

func NewEditorController(editorService service.IEditorService, chatService service.IChatService) IEditorController {
	return &editorController{
		editorService: editorService,
		chatService:   chatService,
	}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("edit", c.EditSection)
	h.Get("history/:ideaId", c.StageHistory)
	h.Post("chat", c.GlobalChat)
	h.Get("chat/:ideaId", c.GlobalChatHistory)
}

func (c *editorController) EditSection(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.EditSectionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.editorService.EditSection(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success edit section", res)
}

func (c *editorController) StageHistory(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	ideaId, _ := uuid.Parse(ctx.Params("ideaId"))

	stage, err := strconv.Atoi(ctx.Query("stage", "1"))
	if err != nil || stage < 1 || stage > 3 {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid stage", err)
	}
	section := ctx.Query("section", "")

	res, err := c.editorService.StageHistory(ctx.Context(), userId, ideaId, stage, section)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show stage history", res)
}

func (c *editorController) GlobalChat(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GlobalChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success chat", res)
}

func (c *editorController) GlobalChatHistory(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	ideaId, _ := uuid.Parse(ctx.Params("ideaId"))

	res, err := c.chatService.History(ctx.Context(), userId, ideaId)
	if err != nil {
		return mapDomainError(err)
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show chat history", res)
}
