package mapper

import (
	"time"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArchitectureMapper struct{}

func NewArchitectureMapper() *ArchitectureMapper {
	return &ArchitectureMapper{}
}

func (m *ArchitectureMapper) ToEntity(a *model.Architecture) *entity.Architecture {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Architecture{
		Id:                    a.Id,
		ActionPlanId:          a.ActionPlanId,
		UserId:                a.UserId,
		Status:                entity.ArchitectureStatus(a.Status),
		UserStories:           a.UserStories,
		DatabaseType:          a.DatabaseType,
		DatabaseSchema:        a.DatabaseSchema,
		EntitiesRelationships: a.EntitiesRelationships,
		TechStack:             a.TechStack,
		ArchitecturePattern:   a.ArchitecturePattern,
		SystemArchitecture:    a.SystemArchitecture,
		Completed:             a.Completed,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             updatedAt,
		DeletedAt:             deletedAt,
		IsDeleted:             a.DeletedAt.Valid,
	}
}

func (m *ArchitectureMapper) ToModel(a *entity.Architecture) *model.Architecture {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Architecture{
		Id:                    a.Id,
		ActionPlanId:          a.ActionPlanId,
		UserId:                a.UserId,
		Status:                string(a.Status),
		UserStories:           a.UserStories,
		DatabaseType:          a.DatabaseType,
		DatabaseSchema:        a.DatabaseSchema,
		EntitiesRelationships: a.EntitiesRelationships,
		TechStack:             a.TechStack,
		ArchitecturePattern:   a.ArchitecturePattern,
		SystemArchitecture:    a.SystemArchitecture,
		Completed:             a.Completed,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             updatedAt,
		DeletedAt:             deletedAt,
	}
}

func (m *ArchitectureMapper) ModuleToEntity(d *model.DevelopmentModule) *entity.DevelopmentModule {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.DevelopmentModule{
		Id:               d.Id,
		ArchitectureId:   d.ArchitectureId,
		Name:             d.Name,
		Description:      d.Description,
		Functionality:    d.Functionality,
		Dependencies:     []string(d.Dependencies),
		TechnicalDetails: d.TechnicalDetails,
		Priority:         entity.ModulePriority(d.Priority),
		Status:           entity.ModuleStatus(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        d.DeletedAt.Valid,
	}
}

func (m *ArchitectureMapper) ModuleToModel(d *entity.DevelopmentModule) *model.DevelopmentModule {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.DevelopmentModule{
		Id:               d.Id,
		ArchitectureId:   d.ArchitectureId,
		Name:             d.Name,
		Description:      d.Description,
		Functionality:    d.Functionality,
		Dependencies:     datatypes.JSONSlice[string](d.Dependencies),
		TechnicalDetails: d.TechnicalDetails,
		Priority:         string(d.Priority),
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

func (m *ArchitectureMapper) ModulesToEntities(mods []*model.DevelopmentModule) []*entity.DevelopmentModule {
	entities := make([]*entity.DevelopmentModule, len(mods))
	for i, d := range mods {
		entities[i] = m.ModuleToEntity(d)
	}
	return entities
}

func (m *ArchitectureMapper) ModulesToModels(mods []*entity.DevelopmentModule) []*model.DevelopmentModule {
	models := make([]*model.DevelopmentModule, len(mods))
	for i, d := range mods {
		models[i] = m.ModuleToModel(d)
	}
	return models
}
