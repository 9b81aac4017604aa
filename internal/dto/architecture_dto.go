package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateArchitectureRequest struct {
	ActionPlanId uuid.UUID `json:"action_plan_id" validate:"required"`
}

type ShowArchitectureResponse struct {
	Id                    uuid.UUID  `json:"id"`
	ActionPlanId          uuid.UUID  `json:"action_plan_id"`
	Status                string     `json:"status"`
	UserStories           string     `json:"user_stories"`
	DatabaseType          string     `json:"database_type"`
	DatabaseSchema        string     `json:"database_schema"`
	EntitiesRelationships string     `json:"entities_relationships"`
	TechStack             string     `json:"tech_stack"`
	ArchitecturePattern   string     `json:"architecture_pattern"`
	SystemArchitecture    string     `json:"system_architecture"`
	Completed             bool       `json:"completed"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

type UpdateArchitectureRequest struct {
	Id                    uuid.UUID
	UserStories           string `json:"user_stories"`
	DatabaseType          string `json:"database_type"`
	DatabaseSchema        string `json:"database_schema"`
	EntitiesRelationships string `json:"entities_relationships"`
	TechStack             string `json:"tech_stack"`
	ArchitecturePattern   string `json:"architecture_pattern"`
	SystemArchitecture    string `json:"system_architecture"`
}

type UpdateArchitectureResponse struct {
	Id uuid.UUID `json:"id"`
}

type DevelopmentModuleResponse struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Functionality    string    `json:"functionality"`
	Dependencies     []string  `json:"dependencies"`
	TechnicalDetails string    `json:"technical_details"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
}

type UpdateModuleStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=pending in_progress done"`
}
