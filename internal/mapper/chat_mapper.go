package mapper

import (
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) StageMessageToEntity(msg *model.StageMessage) *entity.StageMessage {
	if msg == nil {
		return nil
	}
	return &entity.StageMessage{
		Id:        msg.Id,
		IdeaId:    msg.IdeaId,
		Stage:     msg.Stage,
		Section:   msg.Section,
		Role:      entity.MessageRole(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) StageMessageToModel(msg *entity.StageMessage) *model.StageMessage {
	if msg == nil {
		return nil
	}
	return &model.StageMessage{
		Id:        msg.Id,
		IdeaId:    msg.IdeaId,
		Stage:     msg.Stage,
		Section:   msg.Section,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) StageMessagesToEntities(msgs []*model.StageMessage) []*entity.StageMessage {
	entities := make([]*entity.StageMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.StageMessageToEntity(msg)
	}
	return entities
}

func (m *ChatMapper) GlobalMessageToEntity(msg *model.GlobalChatMessage) *entity.GlobalChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.GlobalChatMessage{
		Id:        msg.Id,
		IdeaId:    msg.IdeaId,
		Role:      entity.MessageRole(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) GlobalMessageToModel(msg *entity.GlobalChatMessage) *model.GlobalChatMessage {
	if msg == nil {
		return nil
	}
	return &model.GlobalChatMessage{
		Id:        msg.Id,
		IdeaId:    msg.IdeaId,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) GlobalMessagesToEntities(msgs []*model.GlobalChatMessage) []*entity.GlobalChatMessage {
	entities := make([]*entity.GlobalChatMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.GlobalMessageToEntity(msg)
	}
	return entities
}
