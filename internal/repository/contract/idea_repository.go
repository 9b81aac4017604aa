package contract

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IdeaRepository interface {
	Create(ctx context.Context, idea *entity.Idea) error
	Update(ctx context.Context, idea *entity.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Idea, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Idea, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
