package mapper

import (
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ConversationToEntity(c *model.ChatConversation) *entity.ChatConversation {
	if c == nil {
		return nil
	}
	return &entity.ChatConversation{
		Id:        c.Id,
		ThreadId:  c.ThreadId,
		UserName:  c.UserName,
		UserEmail: c.UserEmail,
		UserPhone: c.UserPhone,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.ChatConversation) *model.ChatConversation {
	if c == nil {
		return nil
	}
	return &model.ChatConversation{
		Id:        c.Id,
		ThreadId:  c.ThreadId,
		UserName:  c.UserName,
		UserEmail: c.UserEmail,
		UserPhone: c.UserPhone,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ChatMapper) ConversationsToEntities(items []*model.ChatConversation) []*entity.ChatConversation {
	entities := make([]*entity.ChatConversation, len(items))
	for i, c := range items {
		entities[i] = m.ConversationToEntity(c)
	}
	return entities
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         entity.ChatSender(msg.Sender),
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         string(msg.Sender),
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(items []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(items))
	for i, msg := range items {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
