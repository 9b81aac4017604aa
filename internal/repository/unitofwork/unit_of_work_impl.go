package unitofwork

import (
	"context"
	"fmt"

	"idea-forge-be/internal/repository/contract"
	"idea-forge-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) IdeaRepository() contract.IdeaRepository {
	return implementation.NewIdeaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActionPlanRepository() contract.ActionPlanRepository {
	return implementation.NewActionPlanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ArchitectureRepository() contract.ArchitectureRepository {
	return implementation.NewArchitectureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DevelopmentModuleRepository() contract.DevelopmentModuleRepository {
	return implementation.NewDevelopmentModuleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StageMessageRepository() contract.StageMessageRepository {
	return implementation.NewStageMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GlobalChatRepository() contract.GlobalChatRepository {
	return implementation.NewGlobalChatRepository(u.getDB())
}

func (u *UnitOfWorkImpl) IdeaEmbeddingRepository() contract.IdeaEmbeddingRepository {
	return implementation.NewIdeaEmbeddingRepository(u.getDB())
}
