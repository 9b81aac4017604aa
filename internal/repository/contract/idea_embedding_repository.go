package contract

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredIdeaEmbedding wraps IdeaEmbedding with its similarity score.
type ScoredIdeaEmbedding struct {
	Embedding  *entity.IdeaEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type IdeaEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.IdeaEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.IdeaEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IdeaEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar orders by pgvector cosine distance, scoped to a user so
	// one account never surfaces another account's ideas.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, userId uuid.UUID) ([]*ScoredIdeaEmbedding, error)
}
