package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters records belonging to a user.
type OwnedBy struct {
	UserId uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByIdeaId filters records attached to an idea.
type ByIdeaId struct {
	IdeaId uuid.UUID
}

func (s ByIdeaId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("idea_id = ?", s.IdeaId)
}

// ByActionPlanId filters architectures by their parent plan.
type ByActionPlanId struct {
	ActionPlanId uuid.UUID
}

func (s ByActionPlanId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action_plan_id = ?", s.ActionPlanId)
}

// ByArchitectureId filters development modules by their parent architecture.
type ByArchitectureId struct {
	ArchitectureId uuid.UUID
}

func (s ByArchitectureId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("architecture_id = ?", s.ArchitectureId)
}

// ByStage filters stage messages by planning stage.
type ByStage struct {
	Stage int
}

func (s ByStage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stage = ?", s.Stage)
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByToken filters token tables by token value.
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}
