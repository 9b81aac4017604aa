package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Architecture struct {
	Id                    uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActionPlanId          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	UserId                uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status                string         `gorm:"type:varchar(50);not null;default:'draft'"`
	UserStories           string         `gorm:"type:text"`
	DatabaseType          string         `gorm:"type:varchar(100)"`
	DatabaseSchema        string         `gorm:"type:text"`
	EntitiesRelationships string         `gorm:"type:text"`
	TechStack             string         `gorm:"type:text"`
	ArchitecturePattern   string         `gorm:"type:varchar(100)"`
	SystemArchitecture    string         `gorm:"type:text"`
	Completed             bool           `gorm:"default:false"`
	CreatedAt             time.Time      `gorm:"autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (Architecture) TableName() string {
	return "architectures"
}

type DevelopmentModule struct {
	Id               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArchitectureId   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name             string                      `gorm:"type:varchar(255);not null"`
	Description      string                      `gorm:"type:text"`
	Functionality    string                      `gorm:"type:text"`
	Dependencies     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TechnicalDetails string                      `gorm:"type:text"`
	Priority         string                      `gorm:"type:varchar(20);default:'medium'"`
	Status           string                      `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt              `gorm:"index"`
}

func (DevelopmentModule) TableName() string {
	return "development_modules"
}
