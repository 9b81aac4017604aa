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

type ArchitectureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArchitectureMapper
}

func NewArchitectureRepository(db *gorm.DB) contract.ArchitectureRepository {
	return &ArchitectureRepositoryImpl{
		db:     db,
		mapper: mapper.NewArchitectureMapper(),
	}
}

func (r *ArchitectureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArchitectureRepositoryImpl) Create(ctx context.Context, arch *entity.Architecture) error {
	m := r.mapper.ToModel(arch)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*arch = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArchitectureRepositoryImpl) Update(ctx context.Context, arch *entity.Architecture) error {
	m := r.mapper.ToModel(arch)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*arch = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArchitectureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Architecture{}, id).Error
}

func (r *ArchitectureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Architecture, error) {
	var m model.Architecture
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ArchitectureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Architecture, error) {
	var models []*model.Architecture
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Architecture, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ArchitectureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Architecture{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
