package mapper

import (
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		CreatedAt: s.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	answerFound := true
	if msg.AnswerFound != nil {
		answerFound = *msg.AnswerFound
	}
	return &entity.Message{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Role:        msg.Role,
		Content:     msg.Content,
		Category:    msg.Category,
		AnswerFound: answerFound,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	answerFound := msg.AnswerFound
	return &model.Message{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Role:        msg.Role,
		Content:     msg.Content,
		Category:    msg.Category,
		AnswerFound: &answerFound,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
