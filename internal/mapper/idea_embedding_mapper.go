package mapper

import (
	"time"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type IdeaEmbeddingMapper struct{}

func NewIdeaEmbeddingMapper() *IdeaEmbeddingMapper {
	return &IdeaEmbeddingMapper{}
}

func (m *IdeaEmbeddingMapper) ToEntity(e *model.IdeaEmbedding) *entity.IdeaEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.IdeaEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		IdeaId:         e.IdeaId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *IdeaEmbeddingMapper) ToModel(e *entity.IdeaEmbedding) *model.IdeaEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.IdeaEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		IdeaId:         e.IdeaId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *IdeaEmbeddingMapper) ToEntities(embeddings []*model.IdeaEmbedding) []*entity.IdeaEmbedding {
	entities := make([]*entity.IdeaEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *IdeaEmbeddingMapper) ToModels(embeddings []*entity.IdeaEmbedding) []*model.IdeaEmbedding {
	models := make([]*model.IdeaEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
