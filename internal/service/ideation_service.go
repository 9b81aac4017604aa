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
	"idea-forge-be/pkg/embedding"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrStageLocked = errors.New("stage is locked: a downstream stage already exists")
)

type IIdeationService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error)
	Improve(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowIdeaResponse, error)
	Show(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowIdeaResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowIdeaResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.UpdateIdeaResponse, error)
	Complete(ctx context.Context, userId, ideaId uuid.UUID) (*dto.CompleteIdeaResponse, error)
	Delete(ctx context.Context, userId, ideaId uuid.UUID) error
	FindRelated(ctx context.Context, userId, ideaId uuid.UUID, limit int) ([]*dto.RelatedIdeaResponse, error)
}

type ideationService struct {
	uowFactory        unitofwork.RepositoryFactory
	generator         *agent.Generator
	embeddingProvider embedding.EmbeddingProvider
	publisher         IPublisherService
	logger            logger.ILogger
}

func NewIdeationService(
	uowFactory unitofwork.RepositoryFactory,
	generator *agent.Generator,
	embeddingProvider embedding.EmbeddingProvider,
	publisher IPublisherService,
	log logger.ILogger,
) IIdeationService {
	return &ideationService{
		uowFactory:        uowFactory,
		generator:         generator,
		embeddingProvider: embeddingProvider,
		publisher:         publisher,
		logger:            log,
	}
}

func (s *ideationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea := &entity.Idea{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Objective: req.Objective,
		Problem:   req.Problem,
		Scope:     req.Scope,
		CreatedAt: time.Now(),
	}

	if err := uow.IdeaRepository().Create(ctx, idea); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishEmbedIdea(idea.Id); err != nil {
		s.logger.Warn("IdeationService", "Failed to queue idea embedding", map[string]interface{}{"error": err.Error(), "idea_id": idea.Id})
	}

	return &dto.CreateIdeaResponse{Id: idea.Id}, nil
}

// Improve runs the ideation agent over the four core sections and persists
// the sharpened versions. Allowed only while the idea is still unlocked.
func (s *ideationService) Improve(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := s.ownedIdea(ctx, uow, userId, ideaId)
	if err != nil {
		return nil, err
	}

	locked, err := s.ideaLocked(ctx, uow, ideaId)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrStageLocked
	}

	improved, err := s.generator.ImproveIdea(ctx, &agent.IdeaContext{
		Title:     idea.Title,
		Objective: idea.Objective,
		Problem:   idea.Problem,
		Scope:     idea.Scope,
	})
	if err != nil {
		return nil, err
	}

	idea.Title = improved.Title
	idea.Objective = improved.Objective
	idea.Problem = improved.Problem
	idea.Scope = improved.Scope

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishEmbedIdea(idea.Id); err != nil {
		s.logger.Warn("IdeationService", "Failed to queue idea embedding", map[string]interface{}{"error": err.Error(), "idea_id": idea.Id})
	}

	return s.toShowResponse(idea, locked), nil
}

func (s *ideationService) Show(ctx context.Context, userId, ideaId uuid.UUID) (*dto.ShowIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := s.ownedIdea(ctx, uow, userId, ideaId)
	if err != nil {
		return nil, err
	}

	locked, err := s.ideaLocked(ctx, uow, ideaId)
	if err != nil {
		return nil, err
	}

	return s.toShowResponse(idea, locked), nil
}

func (s *ideationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ideas, err := uow.IdeaRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowIdeaResponse, len(ideas))
	for i, idea := range ideas {
		out[i] = s.toShowResponse(idea, false)
	}
	return out, nil
}

func (s *ideationService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.UpdateIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := s.ownedIdea(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	locked, err := s.ideaLocked(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrStageLocked
	}

	idea.Title = req.Title
	idea.Objective = req.Objective
	idea.Problem = req.Problem
	idea.Scope = req.Scope
	idea.ValidateCompetition = req.ValidateCompetition
	idea.ValidateMonetization = req.ValidateMonetization

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishEmbedIdea(idea.Id); err != nil {
		s.logger.Warn("IdeationService", "Failed to queue idea embedding", map[string]interface{}{"error": err.Error(), "idea_id": idea.Id})
	}

	return &dto.UpdateIdeaResponse{Id: idea.Id}, nil
}

func (s *ideationService) Complete(ctx context.Context, userId, ideaId uuid.UUID) (*dto.CompleteIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := s.ownedIdea(ctx, uow, userId, ideaId)
	if err != nil {
		return nil, err
	}

	idea.Completed = true
	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	return &dto.CompleteIdeaResponse{Id: idea.Id, Completed: true}, nil
}

func (s *ideationService) Delete(ctx context.Context, userId, ideaId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedIdea(ctx, uow, userId, ideaId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StageMessageRepository().DeleteByIdeaId(ctx, ideaId); err != nil {
		return err
	}
	if err := uow.GlobalChatRepository().DeleteByIdeaId(ctx, ideaId); err != nil {
		return err
	}
	if err := uow.IdeaEmbeddingRepository().DeleteByIdeaId(ctx, ideaId); err != nil {
		return err
	}
	if err := uow.IdeaRepository().Delete(ctx, ideaId); err != nil {
		return err
	}

	return uow.Commit()
}

// FindRelated embeds the idea's title and objective as a query and searches
// the user's other ideas by vector similarity.
func (s *ideationService) FindRelated(ctx context.Context, userId, ideaId uuid.UUID, limit int) ([]*dto.RelatedIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := s.ownedIdea(ctx, uow, userId, ideaId)
	if err != nil {
		return nil, err
	}

	query := idea.Title + "\n" + idea.Objective
	res, err := s.embeddingProvider.Generate(query, embedding.TaskQuery)
	if err != nil {
		return nil, err
	}

	scored, err := uow.IdeaEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit, userId)
	if err != nil {
		return nil, err
	}

	var out []*dto.RelatedIdeaResponse
	for _, hit := range scored {
		if hit.Embedding.IdeaId == ideaId {
			continue // the idea itself is always its own best match
		}
		out = append(out, &dto.RelatedIdeaResponse{
			IdeaId:     hit.Embedding.IdeaId,
			Document:   hit.Embedding.Document,
			Similarity: hit.Similarity,
		})
	}
	return out, nil
}

func (s *ideationService) ownedIdea(ctx context.Context, uow unitofwork.UnitOfWork, userId, ideaId uuid.UUID) (*entity.Idea, error) {
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
	return idea, nil
}

func (s *ideationService) ideaLocked(ctx context.Context, uow unitofwork.UnitOfWork, ideaId uuid.UUID) (bool, error) {
	count, err := uow.ActionPlanRepository().Count(ctx, specification.ByIdeaId{IdeaId: ideaId})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ideationService) toShowResponse(idea *entity.Idea, locked bool) *dto.ShowIdeaResponse {
	return &dto.ShowIdeaResponse{
		Id:                   idea.Id,
		Title:                idea.Title,
		Objective:            idea.Objective,
		Problem:              idea.Problem,
		Scope:                idea.Scope,
		ValidateCompetition:  idea.ValidateCompetition,
		ValidateMonetization: idea.ValidateMonetization,
		Completed:            idea.Completed,
		Locked:               locked,
		CreatedAt:            idea.CreatedAt,
		UpdatedAt:            idea.UpdatedAt,
	}
}
