package model

import (
	"time"

	"github.com/google/uuid"
)

// StageMessage is the per-stage editing conversation history for an idea.
type StageMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IdeaId    uuid.UUID `gorm:"type:uuid;not null;index:idx_stage_messages_idea_stage,priority:1"`
	Stage     int       `gorm:"not null;index:idx_stage_messages_idea_stage,priority:2"`
	Section   string    `gorm:"type:varchar(100)"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (StageMessage) TableName() string {
	return "stage_messages"
}

// GlobalChatMessage is the project-wide assistant conversation, not bound to
// a single stage.
type GlobalChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IdeaId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GlobalChatMessage) TableName() string {
	return "global_chat_messages"
}
