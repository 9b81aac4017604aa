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

var ErrPlanNotCompleted = errors.New("action plan must be completed before generating an architecture")

type IArchitectureService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateArchitectureRequest) (*dto.ShowArchitectureResponse, error)
	ShowByActionPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.ShowArchitectureResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateArchitectureRequest) (*dto.UpdateArchitectureResponse, error)
	Complete(ctx context.Context, userId, archId uuid.UUID) error
	GenerateModules(ctx context.Context, userId, archId uuid.UUID) ([]*dto.DevelopmentModuleResponse, error)
	ListModules(ctx context.Context, userId, archId uuid.UUID) ([]*dto.DevelopmentModuleResponse, error)
	UpdateModuleStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateModuleStatusRequest) error
}

type architectureService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *agent.Generator
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewArchitectureService(
	uowFactory unitofwork.RepositoryFactory,
	generator *agent.Generator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IArchitectureService {
	return &architectureService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Generate creates the architecture record for a completed action plan and
// fills it with the first agent draft. Creating the record locks the plan.
func (s *architectureService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateArchitectureRequest) (*dto.ShowArchitectureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.ActionPlanRepository().FindOne(ctx,
		specification.ByID{ID: req.ActionPlanId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	if !plan.Completed {
		return nil, ErrPlanNotCompleted
	}

	existing, err := uow.ArchitectureRepository().FindOne(ctx, specification.ByActionPlanId{ActionPlanId: plan.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	idea, err := uow.IdeaRepository().FindOne(ctx, specification.ByID{ID: plan.IdeaId})
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	arch := &entity.Architecture{
		Id:           uuid.New(),
		ActionPlanId: plan.Id,
		UserId:       userId,
		Status:       entity.ArchitectureStatusGenerating,
		CreatedAt:    time.Now(),
	}
	if err := uow.ArchitectureRepository().Create(ctx, arch); err != nil {
		return nil, err
	}

	draft, err := s.generator.GenerateArchitecture(ctx,
		&agent.IdeaContext{
			Title:     idea.Title,
			Objective: idea.Objective,
			Problem:   idea.Problem,
			Scope:     idea.Scope,
		},
		&agent.ActionPlanContext{
			FunctionalRequirements:    plan.FunctionalRequirements,
			NonFunctionalRequirements: plan.NonFunctionalRequirements,
			BusinessLogicFlow:         plan.BusinessLogicFlow,
		},
	)
	if err != nil {
		arch.Status = entity.ArchitectureStatusFailed
		if uerr := uow.ArchitectureRepository().Update(ctx, arch); uerr != nil {
			s.logger.Error("ArchitectureService", "Failed to mark architecture as failed", map[string]interface{}{"error": uerr.Error(), "architecture_id": arch.Id})
		}
		return nil, err
	}

	arch.UserStories = draft.UserStories
	arch.DatabaseType = draft.DatabaseType
	arch.DatabaseSchema = draft.DatabaseSchema
	arch.EntitiesRelationships = draft.EntitiesRelationships
	arch.TechStack = draft.TechStack
	arch.ArchitecturePattern = draft.ArchitecturePattern
	arch.SystemArchitecture = draft.SystemArchitecture
	arch.Status = entity.ArchitectureStatusReady

	if err := uow.ArchitectureRepository().Update(ctx, arch); err != nil {
		return nil, err
	}

	s.publishStageCompleted(ctx, userId, 2)

	return s.toShowResponse(arch), nil
}

func (s *architectureService) ShowByActionPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.ShowArchitectureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arch, err := uow.ArchitectureRepository().FindOne(ctx,
		specification.ByActionPlanId{ActionPlanId: planId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if arch == nil {
		return nil, ErrNotFound
	}

	return s.toShowResponse(arch), nil
}

func (s *architectureService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateArchitectureRequest) (*dto.UpdateArchitectureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arch, err := s.ownedArchitecture(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	arch.UserStories = req.UserStories
	arch.DatabaseType = req.DatabaseType
	arch.DatabaseSchema = req.DatabaseSchema
	arch.EntitiesRelationships = req.EntitiesRelationships
	arch.TechStack = req.TechStack
	arch.ArchitecturePattern = req.ArchitecturePattern
	arch.SystemArchitecture = req.SystemArchitecture

	if err := uow.ArchitectureRepository().Update(ctx, arch); err != nil {
		return nil, err
	}

	return &dto.UpdateArchitectureResponse{Id: arch.Id}, nil
}

func (s *architectureService) Complete(ctx context.Context, userId, archId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arch, err := s.ownedArchitecture(ctx, uow, userId, archId)
	if err != nil {
		return err
	}

	arch.Completed = true
	if err := uow.ArchitectureRepository().Update(ctx, arch); err != nil {
		return err
	}

	s.publishStageCompleted(ctx, userId, 3)
	return nil
}

// GenerateModules breaks a ready architecture into development modules,
// replacing any previous breakdown.
func (s *architectureService) GenerateModules(ctx context.Context, userId, archId uuid.UUID) ([]*dto.DevelopmentModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arch, err := s.ownedArchitecture(ctx, uow, userId, archId)
	if err != nil {
		return nil, err
	}

	plan, err := uow.ActionPlanRepository().FindOne(ctx, specification.ByID{ID: arch.ActionPlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	idea, err := uow.IdeaRepository().FindOne(ctx, specification.ByID{ID: plan.IdeaId})
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	drafts, err := s.generator.GenerateModules(ctx,
		&agent.IdeaContext{
			Title:     idea.Title,
			Objective: idea.Objective,
			Problem:   idea.Problem,
			Scope:     idea.Scope,
		},
		&agent.ArchitectureContext{
			UserStories:           arch.UserStories,
			DatabaseType:          arch.DatabaseType,
			DatabaseSchema:        arch.DatabaseSchema,
			EntitiesRelationships: arch.EntitiesRelationships,
			TechStack:             arch.TechStack,
			ArchitecturePattern:   arch.ArchitecturePattern,
			SystemArchitecture:    arch.SystemArchitecture,
		},
	)
	if err != nil {
		return nil, err
	}

	mods := make([]*entity.DevelopmentModule, len(drafts))
	for i, d := range drafts {
		mods[i] = &entity.DevelopmentModule{
			Id:               uuid.New(),
			ArchitectureId:   arch.Id,
			Name:             d.Name,
			Description:      d.Description,
			Functionality:    d.Functionality,
			Dependencies:     d.Dependencies,
			TechnicalDetails: d.TechnicalDetails,
			Priority:         priorityFromRank(d.Priority),
			Status:           entity.ModuleStatusPending,
			CreatedAt:        time.Now(),
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DevelopmentModuleRepository().DeleteByArchitectureId(ctx, arch.Id); err != nil {
		return nil, err
	}
	if len(mods) > 0 {
		if err := uow.DevelopmentModuleRepository().CreateBulk(ctx, mods); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return modulesToResponse(mods), nil
}

func (s *architectureService) ListModules(ctx context.Context, userId, archId uuid.UUID) ([]*dto.DevelopmentModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedArchitecture(ctx, uow, userId, archId); err != nil {
		return nil, err
	}

	mods, err := uow.DevelopmentModuleRepository().FindAll(ctx,
		specification.ByArchitectureId{ArchitectureId: archId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	return modulesToResponse(mods), nil
}

func (s *architectureService) UpdateModuleStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateModuleStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mod, err := uow.DevelopmentModuleRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if mod == nil {
		return ErrNotFound
	}

	// Ownership runs through the architecture record.
	if _, err := s.ownedArchitecture(ctx, uow, userId, mod.ArchitectureId); err != nil {
		return err
	}

	mod.Status = entity.ModuleStatus(req.Status)
	return uow.DevelopmentModuleRepository().Update(ctx, mod)
}

func (s *architectureService) publishStageCompleted(ctx context.Context, userId uuid.UUID, stage int) {
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
		s.logger.Warn("ArchitectureService", "Failed to publish stage completed event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *architectureService) ownedArchitecture(ctx context.Context, uow unitofwork.UnitOfWork, userId, archId uuid.UUID) (*entity.Architecture, error) {
	arch, err := uow.ArchitectureRepository().FindOne(ctx,
		specification.ByID{ID: archId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if arch == nil {
		return nil, ErrNotFound
	}
	return arch, nil
}

func (s *architectureService) toShowResponse(arch *entity.Architecture) *dto.ShowArchitectureResponse {
	return &dto.ShowArchitectureResponse{
		Id:                    arch.Id,
		ActionPlanId:          arch.ActionPlanId,
		Status:                string(arch.Status),
		UserStories:           arch.UserStories,
		DatabaseType:          arch.DatabaseType,
		DatabaseSchema:        arch.DatabaseSchema,
		EntitiesRelationships: arch.EntitiesRelationships,
		TechStack:             arch.TechStack,
		ArchitecturePattern:   arch.ArchitecturePattern,
		SystemArchitecture:    arch.SystemArchitecture,
		Completed:             arch.Completed,
		CreatedAt:             arch.CreatedAt,
		UpdatedAt:             arch.UpdatedAt,
	}
}

// priorityFromRank maps the agent's numeric build order onto the coarse
// priority buckets shown in the module board.
func priorityFromRank(rank int) entity.ModulePriority {
	switch {
	case rank <= 3:
		return entity.ModulePriorityHigh
	case rank <= 6:
		return entity.ModulePriorityMedium
	default:
		return entity.ModulePriorityLow
	}
}

func modulesToResponse(mods []*entity.DevelopmentModule) []*dto.DevelopmentModuleResponse {
	out := make([]*dto.DevelopmentModuleResponse, len(mods))
	for i, m := range mods {
		out[i] = &dto.DevelopmentModuleResponse{
			Id:               m.Id,
			Name:             m.Name,
			Description:      m.Description,
			Functionality:    m.Functionality,
			Dependencies:     m.Dependencies,
			TechnicalDetails: m.TechnicalDetails,
			Priority:         string(m.Priority),
			Status:           string(m.Status),
		}
	}
	return out
}
