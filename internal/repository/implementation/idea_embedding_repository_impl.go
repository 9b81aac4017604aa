package implementation

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/mapper"
	"idea-forge-be/internal/model"
	"idea-forge-be/internal/repository/contract"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type IdeaEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IdeaEmbeddingMapper
}

func NewIdeaEmbeddingRepository(db *gorm.DB) contract.IdeaEmbeddingRepository {
	return &IdeaEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewIdeaEmbeddingMapper(),
	}
}

func (r *IdeaEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IdeaEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.IdeaEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *IdeaEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.IdeaEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := r.mapper.ToModels(embeddings)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *IdeaEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IdeaEmbedding{}, id).Error
}

func (r *IdeaEmbeddingRepositoryImpl) DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("idea_id = ?", ideaId).Delete(&model.IdeaEmbedding{}).Error
}

func (r *IdeaEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IdeaEmbedding, error) {
	var models []*model.IdeaEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *IdeaEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.IdeaEmbedding{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *IdeaEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, userId uuid.UUID) ([]*contract.ScoredIdeaEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query) recovers the similarity. The join with
	// ideas keeps results scoped to the requesting user.
	type result struct {
		model.IdeaEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("idea_embeddings").
		Select("idea_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN ideas ON ideas.id = idea_embeddings.idea_id").
		Where("ideas.user_id = ?", userId).
		Where("idea_embeddings.deleted_at IS NULL").
		Where("ideas.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredIdeaEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredIdeaEmbedding{
			Embedding:  r.mapper.ToEntity(&res.IdeaEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
