package entity

import (
	"time"

	"github.com/google/uuid"
)

type IdeaEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	IdeaId         uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

// RelatedIdea is a similarity search hit against stored idea embeddings.
type RelatedIdea struct {
	IdeaId   uuid.UUID
	Document string
	Distance float64
}
