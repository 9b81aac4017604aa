package contract

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ArchitectureRepository interface {
	Create(ctx context.Context, arch *entity.Architecture) error
	Update(ctx context.Context, arch *entity.Architecture) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Architecture, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Architecture, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type DevelopmentModuleRepository interface {
	Create(ctx context.Context, mod *entity.DevelopmentModule) error
	CreateBulk(ctx context.Context, mods []*entity.DevelopmentModule) error
	Update(ctx context.Context, mod *entity.DevelopmentModule) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByArchitectureId(ctx context.Context, architectureId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DevelopmentModule, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DevelopmentModule, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
