package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type StageMessage struct {
	Id        uuid.UUID
	IdeaId    uuid.UUID
	Stage     int
	Section   string
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}

type GlobalChatMessage struct {
	Id        uuid.UUID
	IdeaId    uuid.UUID
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}
