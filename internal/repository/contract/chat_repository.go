package contract

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StageMessageRepository interface {
	Create(ctx context.Context, msg *entity.StageMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageMessage, error)
	DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error
}

type GlobalChatRepository interface {
	Create(ctx context.Context, msg *entity.GlobalChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GlobalChatMessage, error)
	DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error
}
