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

type DevelopmentModuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArchitectureMapper
}

func NewDevelopmentModuleRepository(db *gorm.DB) contract.DevelopmentModuleRepository {
	return &DevelopmentModuleRepositoryImpl{
		db:     db,
		mapper: mapper.NewArchitectureMapper(),
	}
}

func (r *DevelopmentModuleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DevelopmentModuleRepositoryImpl) Create(ctx context.Context, mod *entity.DevelopmentModule) error {
	m := r.mapper.ModuleToModel(mod)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mod = *r.mapper.ModuleToEntity(m)
	return nil
}

func (r *DevelopmentModuleRepositoryImpl) CreateBulk(ctx context.Context, mods []*entity.DevelopmentModule) error {
	if len(mods) == 0 {
		return nil
	}
	models := r.mapper.ModulesToModels(mods)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*mods[i] = *r.mapper.ModuleToEntity(m)
	}
	return nil
}

func (r *DevelopmentModuleRepositoryImpl) Update(ctx context.Context, mod *entity.DevelopmentModule) error {
	m := r.mapper.ModuleToModel(mod)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*mod = *r.mapper.ModuleToEntity(m)
	return nil
}

func (r *DevelopmentModuleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DevelopmentModule{}, id).Error
}

func (r *DevelopmentModuleRepositoryImpl) DeleteByArchitectureId(ctx context.Context, architectureId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("architecture_id = ?", architectureId).Delete(&model.DevelopmentModule{}).Error
}

func (r *DevelopmentModuleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DevelopmentModule, error) {
	var m model.DevelopmentModule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ModuleToEntity(&m), nil
}

func (r *DevelopmentModuleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DevelopmentModule, error) {
	var models []*model.DevelopmentModule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ModulesToEntities(models), nil
}

func (r *DevelopmentModuleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DevelopmentModule{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
