package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionPlanStatus string

const (
	ActionPlanStatusDraft      ActionPlanStatus = "draft"
	ActionPlanStatusGenerating ActionPlanStatus = "generating"
	ActionPlanStatusReady      ActionPlanStatus = "ready"
	ActionPlanStatusFailed     ActionPlanStatus = "failed"
)

type ActionPlan struct {
	Id                        uuid.UUID
	IdeaId                    uuid.UUID
	UserId                    uuid.UUID
	Status                    ActionPlanStatus
	FunctionalRequirements    string
	NonFunctionalRequirements string
	BusinessLogicFlow         string
	Completed                 bool
	CreatedAt                 time.Time
	UpdatedAt                 *time.Time
	DeletedAt                 *time.Time
	IsDeleted                 bool
}

func (p *ActionPlan) Section(key string) (string, bool) {
	switch key {
	case "functional_requirements":
		return p.FunctionalRequirements, true
	case "non_functional_requirements":
		return p.NonFunctionalRequirements, true
	case "business_logic_flow":
		return p.BusinessLogicFlow, true
	}
	return "", false
}

func (p *ActionPlan) SetSection(key, content string) bool {
	switch key {
	case "functional_requirements":
		p.FunctionalRequirements = content
	case "non_functional_requirements":
		p.NonFunctionalRequirements = content
	case "business_logic_flow":
		p.BusinessLogicFlow = content
	default:
		return false
	}
	return true
}
