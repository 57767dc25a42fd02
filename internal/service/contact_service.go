package service

import (
	"context"
	"strings"
	"time"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/pkg/mailer"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/repository/specification"
	"hotel-chatbot-be/internal/repository/unitofwork"
)

type IContactService interface {
	SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
	}
}

func (s *contactService) SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	summary := s.buildTranscript(ctx, uow, req.SessionId)

	contact := entity.ContactSubmission{
		SessionId:           req.SessionId,
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		UnansweredQuestion:  req.UnansweredQuestion,
		ConversationSummary: summary,
		CreatedAt:           time.Now(),
	}
	if err := uow.ContactRepository().Create(ctx, &contact); err != nil {
		return nil, err
	}

	// The submission is already saved, so a mail failure only gets logged;
	// staff can still find the request in the admin panel.
	notification := mailer.ContactNotification{
		Name:                req.Name,
		Email:               req.Email,
		ConversationSummary: summary,
	}
	if req.Phone != nil {
		notification.Phone = *req.Phone
	}
	if req.UnansweredQuestion != nil {
		notification.UnansweredQuestion = *req.UnansweredQuestion
	}
	if err := s.emailService.SendContactNotification(notification); err != nil {
		s.logger.Warn("ContactService", "Failed to send contact notification email", map[string]interface{}{
			"error":     err.Error(),
			"contactId": contact.Id,
		})
	}

	return &dto.ContactResponse{
		Success: true,
		Message: "Contact request submitted successfully",
	}, nil
}

// buildTranscript flattens the session history into the text block stored
// with the submission and mailed to staff. A broken lookup degrades to an
// empty summary rather than rejecting the form.
func (s *contactService) buildTranscript(ctx context.Context, uow unitofwork.UnitOfWork, sessionId *string) string {
	if sessionId == nil || *sessionId == "" {
		return ""
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: *sessionId},
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		s.logger.Warn("ContactService", "Failed to load conversation for transcript", map[string]interface{}{
			"error":     err.Error(),
			"sessionId": *sessionId,
		})
		return ""
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		speaker := "Assistant"
		if m.Role == entity.MessageRoleUser {
			speaker = "Guest"
		}
		lines = append(lines, speaker+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}
