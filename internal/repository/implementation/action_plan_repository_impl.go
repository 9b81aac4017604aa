package implementation

import (
	"context"
	"errors"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/mapper"
	"idea-forge-be/internal/model"
	"idea-forge-be/internal/repository/contract"
	"idea-forge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActionPlanMapper
}

func NewActionPlanRepository(db *gorm.DB) contract.ActionPlanRepository {
	return &ActionPlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewActionPlanMapper(),
	}
}

func (r *ActionPlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActionPlanRepositoryImpl) Create(ctx context.Context, plan *entity.ActionPlan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionPlanRepositoryImpl) Update(ctx context.Context, plan *entity.ActionPlan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionPlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ActionPlan{}, id).Error
}

func (r *ActionPlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionPlan, error) {
	var m model.ActionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ActionPlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionPlan, error) {
	var models []*model.ActionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ActionPlanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ActionPlan{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
