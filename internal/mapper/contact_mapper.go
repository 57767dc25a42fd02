package mapper

import (
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:                  c.Id,
		SessionId:           c.SessionId,
		Name:                c.Name,
		Phone:               c.Phone,
		Email:               c.Email,
		UnansweredQuestion:  c.UnansweredQuestion,
		ConversationSummary: c.ConversationSummary,
		CreatedAt:           c.CreatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactSubmission) *model.ContactSubmission {
	if c == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:                  c.Id,
		SessionId:           c.SessionId,
		Name:                c.Name,
		Phone:               c.Phone,
		Email:               c.Email,
		UnansweredQuestion:  c.UnansweredQuestion,
		ConversationSummary: c.ConversationSummary,
		CreatedAt:           c.CreatedAt,
	}
}

func (m *ContactMapper) ToEntities(models []*model.ContactSubmission) []*entity.ContactSubmission {
	entities := make([]*entity.ContactSubmission, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
