package mapper

import (
	"time"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/model"

	"gorm.io/gorm"
)

type IdeaMapper struct{}

func NewIdeaMapper() *IdeaMapper {
	return &IdeaMapper{}
}

func (m *IdeaMapper) ToEntity(i *model.Idea) *entity.Idea {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Idea{
		Id:                   i.Id,
		UserId:               i.UserId,
		Title:                i.Title,
		Objective:            i.Objective,
		Problem:              i.Problem,
		Scope:                i.Scope,
		ValidateCompetition:  i.ValidateCompetition,
		ValidateMonetization: i.ValidateMonetization,
		Completed:            i.Completed,
		CreatedAt:            i.CreatedAt,
		UpdatedAt:            updatedAt,
		DeletedAt:            deletedAt,
		IsDeleted:            i.DeletedAt.Valid,
	}
}

func (m *IdeaMapper) ToModel(i *entity.Idea) *model.Idea {
	if i == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if i.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *i.DeletedAt, Valid: true}
	} else if i.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Idea{
		Id:                   i.Id,
		UserId:               i.UserId,
		Title:                i.Title,
		Objective:            i.Objective,
		Problem:              i.Problem,
		Scope:                i.Scope,
		ValidateCompetition:  i.ValidateCompetition,
		ValidateMonetization: i.ValidateMonetization,
		Completed:            i.Completed,
		CreatedAt:            i.CreatedAt,
		UpdatedAt:            updatedAt,
		DeletedAt:            deletedAt,
	}
}

func (m *IdeaMapper) ToEntities(ideas []*model.Idea) []*entity.Idea {
	entities := make([]*entity.Idea, len(ideas))
	for i, v := range ideas {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

func (m *IdeaMapper) ToModels(ideas []*entity.Idea) []*model.Idea {
	models := make([]*model.Idea, len(ideas))
	for i, v := range ideas {
		models[i] = m.ToModel(v)
	}
	return models
}
