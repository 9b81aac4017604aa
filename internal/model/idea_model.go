package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Idea struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title                string         `gorm:"type:varchar(255);not null"`
	Objective            string         `gorm:"type:text"`
	Problem              string         `gorm:"type:text"`
	Scope                string         `gorm:"type:text"`
	ValidateCompetition  string         `gorm:"type:text"`
	ValidateMonetization string         `gorm:"type:text"`
	Completed            bool           `gorm:"default:false"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime"`
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (Idea) TableName() string {
	return "ideas"
}
