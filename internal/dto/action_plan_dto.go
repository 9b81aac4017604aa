package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateActionPlanRequest struct {
	IdeaId uuid.UUID `json:"idea_id" validate:"required"`
}

type ShowActionPlanResponse struct {
	Id                        uuid.UUID  `json:"id"`
	IdeaId                    uuid.UUID  `json:"idea_id"`
	Status                    string     `json:"status"`
	FunctionalRequirements    string     `json:"functional_requirements"`
	NonFunctionalRequirements string     `json:"non_functional_requirements"`
	BusinessLogicFlow         string     `json:"business_logic_flow"`
	Completed                 bool       `json:"completed"`
	Locked                    bool       `json:"locked"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 *time.Time `json:"updated_at"`
}

type UpdateActionPlanRequest struct {
	Id                        uuid.UUID
	FunctionalRequirements    string `json:"functional_requirements"`
	NonFunctionalRequirements string `json:"non_functional_requirements"`
	BusinessLogicFlow         string `json:"business_logic_flow"`
}

type UpdateActionPlanResponse struct {
	Id uuid.UUID `json:"id"`
}

type CompleteActionPlanResponse struct {
	Id        uuid.UUID `json:"id"`
	Completed bool      `json:"completed"`
}
