package implementation

import (
	"context"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/mapper"
	"idea-forge-be/internal/model"
	"idea-forge-be/internal/repository/contract"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StageMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewStageMessageRepository(db *gorm.DB) contract.StageMessageRepository {
	return &StageMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *StageMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StageMessageRepositoryImpl) Create(ctx context.Context, msg *entity.StageMessage) error {
	m := r.mapper.StageMessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.StageMessageToEntity(m)
	return nil
}

func (r *StageMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageMessage, error) {
	var models []*model.StageMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.StageMessagesToEntities(models), nil
}

func (r *StageMessageRepositoryImpl) DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("idea_id = ?", ideaId).Delete(&model.StageMessage{}).Error
}

type GlobalChatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewGlobalChatRepository(db *gorm.DB) contract.GlobalChatRepository {
	return &GlobalChatRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *GlobalChatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GlobalChatRepositoryImpl) Create(ctx context.Context, msg *entity.GlobalChatMessage) error {
	m := r.mapper.GlobalMessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.GlobalMessageToEntity(m)
	return nil
}

func (r *GlobalChatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GlobalChatMessage, error) {
	var models []*model.GlobalChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GlobalMessagesToEntities(models), nil
}

func (r *GlobalChatRepositoryImpl) DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("idea_id = ?", ideaId).Delete(&model.GlobalChatMessage{}).Error
}
