package contract

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ActionPlanRepository interface {
	Create(ctx context.Context, plan *entity.ActionPlan) error
	Update(ctx context.Context, plan *entity.ActionPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
