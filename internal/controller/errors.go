package controller

import (
	"errors"

	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"
	"idea-forge-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

// mapDomainError translates service-level sentinel errors into AppErrors so
// the global error handler can emit the right status code. Unknown errors
// pass through and surface as 500s.
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrNotFound):
		return serverutils.NewAppError(fiber.StatusNotFound, "Record not found", err)
	case errors.Is(err, service.ErrStageLocked):
		return serverutils.NewAppError(fiber.StatusConflict, "This stage is locked because a later stage already exists", err)
	case errors.Is(err, service.ErrStageMissing):
		return serverutils.NewAppError(fiber.StatusNotFound, "This stage has not been generated yet", err)
	case errors.Is(err, service.ErrAlreadyExists):
		return serverutils.NewAppError(fiber.StatusConflict, "Record already exists", err)
	case errors.Is(err, service.ErrIdeaNotCompleted):
		return serverutils.NewAppError(fiber.StatusUnprocessableEntity, "Complete the idea before generating an action plan", err)
	case errors.Is(err, service.ErrPlanNotCompleted):
		return serverutils.NewAppError(fiber.StatusUnprocessableEntity, "Complete the action plan before generating an architecture", err)
	case errors.Is(err, service.ErrUnknownSection):
		return serverutils.NewAppError(fiber.StatusBadRequest, "Unknown section for this stage", err)
	case errors.Is(err, llm.ErrRateLimited):
		return serverutils.NewAppError(fiber.StatusTooManyRequests, "The model is rate limited, try again shortly", err)
	case errors.Is(err, llm.ErrUnavailable):
		return serverutils.NewAppError(fiber.StatusServiceUnavailable, "The model backend is unavailable", err)
	}
	return err
}
