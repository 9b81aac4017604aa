package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArchitectureStatus string

const (
	ArchitectureStatusDraft      ArchitectureStatus = "draft"
	ArchitectureStatusGenerating ArchitectureStatus = "generating"
	ArchitectureStatusReady      ArchitectureStatus = "ready"
	ArchitectureStatusFailed     ArchitectureStatus = "failed"
)

type Architecture struct {
	Id                    uuid.UUID
	ActionPlanId          uuid.UUID
	UserId                uuid.UUID
	Status                ArchitectureStatus
	UserStories           string
	DatabaseType          string
	DatabaseSchema        string
	EntitiesRelationships string
	TechStack             string
	ArchitecturePattern   string
	SystemArchitecture    string
	Completed             bool
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	DeletedAt             *time.Time
	IsDeleted             bool
}

func (a *Architecture) Section(key string) (string, bool) {
	switch key {
	case "user_stories":
		return a.UserStories, true
	case "database_type":
		return a.DatabaseType, true
	case "database_schema":
		return a.DatabaseSchema, true
	case "entities_relationships":
		return a.EntitiesRelationships, true
	case "tech_stack":
		return a.TechStack, true
	case "architecture_pattern":
		return a.ArchitecturePattern, true
	case "system_architecture":
		return a.SystemArchitecture, true
	}
	return "", false
}

func (a *Architecture) SetSection(key, content string) bool {
	switch key {
	case "user_stories":
		a.UserStories = content
	case "database_type":
		a.DatabaseType = content
	case "database_schema":
		a.DatabaseSchema = content
	case "entities_relationships":
		a.EntitiesRelationships = content
	case "tech_stack":
		a.TechStack = content
	case "architecture_pattern":
		a.ArchitecturePattern = content
	case "system_architecture":
		a.SystemArchitecture = content
	default:
		return false
	}
	return true
}

type ModulePriority string

const (
	ModulePriorityHigh   ModulePriority = "high"
	ModulePriorityMedium ModulePriority = "medium"
	ModulePriorityLow    ModulePriority = "low"
)

type ModuleStatus string

const (
	ModuleStatusPending    ModuleStatus = "pending"
	ModuleStatusInProgress ModuleStatus = "in_progress"
	ModuleStatusDone       ModuleStatus = "done"
)

type DevelopmentModule struct {
	Id               uuid.UUID
	ArchitectureId   uuid.UUID
	Name             string
	Description      string
	Functionality    string
	Dependencies     []string
	TechnicalDetails string
	Priority         ModulePriority
	Status           ModuleStatus
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}
