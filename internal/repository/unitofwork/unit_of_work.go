package unitofwork

import (
	"context"

	"idea-forge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	IdeaRepository() contract.IdeaRepository
	ActionPlanRepository() contract.ActionPlanRepository
	ArchitectureRepository() contract.ArchitectureRepository
	DevelopmentModuleRepository() contract.DevelopmentModuleRepository
	StageMessageRepository() contract.StageMessageRepository
	GlobalChatRepository() contract.GlobalChatRepository
	IdeaEmbeddingRepository() contract.IdeaEmbeddingRepository
}
