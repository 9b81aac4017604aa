package entity

import (
	"time"

	"github.com/google/uuid"
)

// Idea is the ideation stage record. Its section fields hold free text the
// editing agent rewrites in place.
type Idea struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	Title                string
	Objective            string
	Problem              string
	Scope                string
	ValidateCompetition  string
	ValidateMonetization string
	Completed            bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	DeletedAt            *time.Time
	IsDeleted            bool
}

// Section returns the content of a named ideation section, or false when the
// key is unknown.
func (i *Idea) Section(key string) (string, bool) {
	switch key {
	case "title":
		return i.Title, true
	case "objective":
		return i.Objective, true
	case "problem":
		return i.Problem, true
	case "scope":
		return i.Scope, true
	case "validate_competition":
		return i.ValidateCompetition, true
	case "validate_monetization":
		return i.ValidateMonetization, true
	}
	return "", false
}

// SetSection writes the content of a named ideation section. Returns false
// when the key is unknown.
func (i *Idea) SetSection(key, content string) bool {
	switch key {
	case "title":
		i.Title = content
	case "objective":
		i.Objective = content
	case "problem":
		i.Problem = content
	case "scope":
		i.Scope = content
	case "validate_competition":
		i.ValidateCompetition = content
	case "validate_monetization":
		i.ValidateMonetization = content
	default:
		return false
	}
	return true
}
