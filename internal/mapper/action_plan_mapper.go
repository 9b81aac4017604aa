package mapper

import (
	"time"

	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/model"

	"gorm.io/gorm"
)

type ActionPlanMapper struct{}

func NewActionPlanMapper() *ActionPlanMapper {
	return &ActionPlanMapper{}
}

func (m *ActionPlanMapper) ToEntity(p *model.ActionPlan) *entity.ActionPlan {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.ActionPlan{
		Id:                        p.Id,
		IdeaId:                    p.IdeaId,
		UserId:                    p.UserId,
		Status:                    entity.ActionPlanStatus(p.Status),
		FunctionalRequirements:    p.FunctionalRequirements,
		NonFunctionalRequirements: p.NonFunctionalRequirements,
		BusinessLogicFlow:         p.BusinessLogicFlow,
		Completed:                 p.Completed,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 updatedAt,
		DeletedAt:                 deletedAt,
		IsDeleted:                 p.DeletedAt.Valid,
	}
}

func (m *ActionPlanMapper) ToModel(p *entity.ActionPlan) *model.ActionPlan {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.ActionPlan{
		Id:                        p.Id,
		IdeaId:                    p.IdeaId,
		UserId:                    p.UserId,
		Status:                    string(p.Status),
		FunctionalRequirements:    p.FunctionalRequirements,
		NonFunctionalRequirements: p.NonFunctionalRequirements,
		BusinessLogicFlow:         p.BusinessLogicFlow,
		Completed:                 p.Completed,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 updatedAt,
		DeletedAt:                 deletedAt,
	}
}

func (m *ActionPlanMapper) ToEntities(plans []*model.ActionPlan) []*entity.ActionPlan {
	entities := make([]*entity.ActionPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
