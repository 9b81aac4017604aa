package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateIdeaRequest struct {
	Title     string `json:"title" validate:"required"`
	Objective string `json:"objective"`
	Problem   string `json:"problem"`
	Scope     string `json:"scope"`
}

type CreateIdeaResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowIdeaResponse struct {
	Id                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Objective            string     `json:"objective"`
	Problem              string     `json:"problem"`
	Scope                string     `json:"scope"`
	ValidateCompetition  string     `json:"validate_competition"`
	ValidateMonetization string     `json:"validate_monetization"`
	Completed            bool       `json:"completed"`
	Locked               bool       `json:"locked"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

type UpdateIdeaRequest struct {
	Id                   uuid.UUID
	Title                string `json:"title" validate:"required"`
	Objective            string `json:"objective"`
	Problem              string `json:"problem"`
	Scope                string `json:"scope"`
	ValidateCompetition  string `json:"validate_competition"`
	ValidateMonetization string `json:"validate_monetization"`
}

type UpdateIdeaResponse struct {
	Id uuid.UUID `json:"id"`
}

type CompleteIdeaResponse struct {
	Id        uuid.UUID `json:"id"`
	Completed bool      `json:"completed"`
}

// PublishEmbedIdeaMessage is the payload queued for the embedding worker.
type PublishEmbedIdeaMessage struct {
	IdeaId uuid.UUID `json:"idea_id"`
}

type RelatedIdeaResponse struct {
	IdeaId     uuid.UUID `json:"idea_id"`
	Document   string    `json:"document"`
	Similarity float64   `json:"similarity"`
}
