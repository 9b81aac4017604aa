package dto

import (
	"time"

	"github.com/google/uuid"
)

// EditSectionRequest is one conversational edit turn against a single
// section of a stage record.
type EditSectionRequest struct {
	IdeaId  uuid.UUID `json:"idea_id" validate:"required"`
	Stage   int       `json:"stage" validate:"required,min=1,max=3"`
	Section string    `json:"section" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

// SectionChange describes one section rewritten during an edit turn.
type SectionChange struct {
	Stage     int      `json:"stage"`
	Section   string   `json:"section"`
	Content   string   `json:"content"`
	AddedText []string `json:"added_text,omitempty"`
}

type EditSectionResponse struct {
	Reply          string          `json:"reply"`
	UpdatedSection string          `json:"updated_section,omitempty"`
	Changes        []SectionChange `json:"changes"`
	AffectedStages []int           `json:"affected_stages"`
	Generation     int             `json:"generation"`
	Degraded       bool            `json:"degraded,omitempty"`
}

// ChatMessageResponse is a single stored conversation turn.
type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type GlobalChatRequest struct {
	IdeaId  uuid.UUID `json:"idea_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

type GlobalChatResponse struct {
	Reply string `json:"reply"`
}
