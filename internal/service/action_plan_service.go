package service

import (
	"context"
	"errors"
	"time"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/repository/specification"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/pkg/agent"
	"idea-forge-be/pkg/events"
	pktNats "idea-forge-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrIdeaNotCompleted = errors.New("idea must be completed before generating an action plan")
	ErrAlreadyExists    = errors.New("record already exists")
)

type IActionPlanService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateActionPlanRequest) (*dto.ShowActionPlanResponse, error)
	ShowByIdea(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowActionPlanResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateActionPlanRequest) (*dto.UpdateActionPlanResponse, error)
	Complete(ctx context.Context, userId, planId uuid.UUID) (*dto.CompleteActionPlanResponse, error)
}

type actionPlanService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *agent.Generator
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewActionPlanService(
	uowFactory unitofwork.RepositoryFactory,
	generator *agent.Generator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IActionPlanService {
	return &actionPlanService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Generate creates the action plan record for a completed idea and fills it
// with the first agent draft. Creating the record locks the idea upstream.
func (s *actionPlanService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateActionPlanRequest) (*dto.ShowActionPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: req.IdeaId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if !idea.Completed {
		return nil, ErrIdeaNotCompleted
	}

	existing, err := uow.ActionPlanRepository().FindOne(ctx, specification.ByIdeaId{IdeaId: req.IdeaId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	plan := &entity.ActionPlan{
		Id:        uuid.New(),
		IdeaId:    idea.Id,
		UserId:    userId,
		Status:    entity.ActionPlanStatusGenerating,
		CreatedAt: time.Now(),
	}
	if err := uow.ActionPlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	draft, err := s.generator.GenerateActionPlan(ctx, &agent.IdeaContext{
		Title:     idea.Title,
		Objective: idea.Objective,
		Problem:   idea.Problem,
		Scope:     idea.Scope,
	})
	if err != nil {
		plan.Status = entity.ActionPlanStatusFailed
		if uerr := uow.ActionPlanRepository().Update(ctx, plan); uerr != nil {
			s.logger.Error("ActionPlanService", "Failed to mark plan as failed", map[string]interface{}{"error": uerr.Error(), "plan_id": plan.Id})
		}
		return nil, err
	}

	plan.FunctionalRequirements = draft.FunctionalRequirements
	plan.NonFunctionalRequirements = draft.NonFunctionalRequirements
	plan.BusinessLogicFlow = draft.BusinessLogicFlow
	plan.Status = entity.ActionPlanStatusReady

	if err := uow.ActionPlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	s.publishStageCompleted(ctx, userId, 1)

	return s.toShowResponse(plan, false), nil
}

func (s *actionPlanService) ShowByIdea(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowActionPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.ownedPlanByIdea(ctx, uow, userId, ideaId)
	if err != nil {
		return nil, err
	}

	locked, err := s.planLocked(ctx, uow, plan.Id)
	if err != nil {
		return nil, err
	}

	return s.toShowResponse(plan, locked), nil
}

func (s *actionPlanService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateActionPlanRequest) (*dto.UpdateActionPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.ActionPlanRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	locked, err := s.planLocked(ctx, uow, plan.Id)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrStageLocked
	}

	plan.FunctionalRequirements = req.FunctionalRequirements
	plan.NonFunctionalRequirements = req.NonFunctionalRequirements
	plan.BusinessLogicFlow = req.BusinessLogicFlow

	if err := uow.ActionPlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	return &dto.UpdateActionPlanResponse{Id: plan.Id}, nil
}

func (s *actionPlanService) Complete(ctx context.Context, userId, planId uuid.UUID) (*dto.CompleteActionPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.ActionPlanRepository().FindOne(ctx,
		specification.ByID{ID: planId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	plan.Completed = true
	if err := uow.ActionPlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	s.publishStageCompleted(ctx, userId, 2)

	return &dto.CompleteActionPlanResponse{Id: plan.Id, Completed: true}, nil
}

func (s *actionPlanService) publishStageCompleted(ctx context.Context, userId uuid.UUID, stage int) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeStageCompleted,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"stage":   stage,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("ActionPlanService", "Failed to publish stage completed event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *actionPlanService) ownedPlanByIdea(ctx context.Context, uow unitofwork.UnitOfWork, userId, ideaId uuid.UUID) (*entity.ActionPlan, error) {
	plan, err := uow.ActionPlanRepository().FindOne(ctx,
		specification.ByIdeaId{IdeaId: ideaId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	return plan, nil
}

func (s *actionPlanService) planLocked(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID) (bool, error) {
	count, err := uow.ArchitectureRepository().Count(ctx, specification.ByActionPlanId{ActionPlanId: planId})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *actionPlanService) toShowResponse(plan *entity.ActionPlan, locked bool) *dto.ShowActionPlanResponse {
	return &dto.ShowActionPlanResponse{
		Id:                        plan.Id,
		IdeaId:                    plan.IdeaId,
		Status:                    string(plan.Status),
		FunctionalRequirements:    plan.FunctionalRequirements,
		NonFunctionalRequirements: plan.NonFunctionalRequirements,
		BusinessLogicFlow:         plan.BusinessLogicFlow,
		Completed:                 plan.Completed,
		Locked:                    locked,
		CreatedAt:                 plan.CreatedAt,
		UpdatedAt:                 plan.UpdatedAt,
	}
}
