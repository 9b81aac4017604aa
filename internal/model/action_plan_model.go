package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionPlan struct {
	Id                        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IdeaId                    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	UserId                    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status                    string         `gorm:"type:varchar(50);not null;default:'draft'"`
	FunctionalRequirements    string         `gorm:"type:text"`
	NonFunctionalRequirements string         `gorm:"type:text"`
	BusinessLogicFlow         string         `gorm:"type:text"`
	Completed                 bool           `gorm:"default:false"`
	CreatedAt                 time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                 gorm.DeletedAt `gorm:"index"`
}

func (ActionPlan) TableName() string {
	return "action_plans"
}
