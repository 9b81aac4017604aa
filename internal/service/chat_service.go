package service

import (
	"context"
	"time"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/repository/specification"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/pkg/agent"

	"github.com/google/uuid"
)

// globalChatHistoryWindow caps how many stored turns are replayed into the
// assistant prompt.
const globalChatHistoryWindow = 10

type IChatService interface {
	Ask(ctx context.Context, userId uuid.UUID, req *dto.GlobalChatRequest) (*dto.GlobalChatResponse, error)
	History(ctx context.Context, userId, ideaId uuid.UUID) ([]*dto.ChatMessageResponse, error)
}

// chatService is the project-wide Q&A channel. Unlike section edits it never
// touches stage content or propagation state.
type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  *agent.Assistant
	logger     logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, assistant *agent.Assistant, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		assistant:  assistant,
		logger:     log,
	}
}

func (s *chatService) Ask(ctx context.Context, userId uuid.UUID, req *dto.GlobalChatRequest) (*dto.GlobalChatResponse, error) {
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

	project := &agent.ProjectContext{
		Idea: &agent.IdeaContext{
			Title:     idea.Title,
			Objective: idea.Objective,
			Problem:   idea.Problem,
			Scope:     idea.Scope,
		},
	}

	plan, err := uow.ActionPlanRepository().FindOne(ctx, specification.ByIdeaId{IdeaId: idea.Id})
	if err != nil {
		return nil, err
	}
	if plan != nil {
		project.ActionPlan = &agent.ActionPlanContext{
			FunctionalRequirements:    plan.FunctionalRequirements,
			NonFunctionalRequirements: plan.NonFunctionalRequirements,
			BusinessLogicFlow:         plan.BusinessLogicFlow,
		}

		arch, err := uow.ArchitectureRepository().FindOne(ctx, specification.ByActionPlanId{ActionPlanId: plan.Id})
		if err != nil {
			return nil, err
		}
		if arch != nil {
			project.Architecture = &agent.ArchitectureContext{
				UserStories:           arch.UserStories,
				DatabaseType:          arch.DatabaseType,
				DatabaseSchema:        arch.DatabaseSchema,
				EntitiesRelationships: arch.EntitiesRelationships,
				TechStack:             arch.TechStack,
				ArchitecturePattern:   arch.ArchitecturePattern,
				SystemArchitecture:    arch.SystemArchitecture,
			}
		}
	}

	stored, err := uow.GlobalChatRepository().FindAll(ctx,
		specification.ByIdeaId{IdeaId: idea.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: globalChatHistoryWindow},
	)
	if err != nil {
		return nil, err
	}

	// Stored newest-first; the prompt wants chronological order.
	history := make([]agent.HistoryTurn, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		history = append(history, agent.HistoryTurn{
			Role:    string(stored[i].Role),
			Content: stored[i].Content,
		})
	}

	if err := uow.GlobalChatRepository().Create(ctx, &entity.GlobalChatMessage{
		Id:        uuid.New(),
		IdeaId:    idea.Id,
		Role:      entity.MessageRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	reply, err := s.assistant.Answer(ctx, project, history, req.Message)
	if err != nil {
		return nil, err
	}

	if err := uow.GlobalChatRepository().Create(ctx, &entity.GlobalChatMessage{
		Id:        uuid.New(),
		IdeaId:    idea.Id,
		Role:      entity.MessageRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}); err != nil {
		s.logger.Error("ChatService", "Failed to save assistant message", map[string]interface{}{"error": err.Error(), "idea_id": idea.Id})
	}

	return &dto.GlobalChatResponse{Reply: reply}, nil
}

func (s *chatService) History(ctx context.Context, userId, ideaId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	msgs, err := uow.GlobalChatRepository().FindAll(ctx,
		specification.ByIdeaId{IdeaId: ideaId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChatMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = &dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return out, nil
}
