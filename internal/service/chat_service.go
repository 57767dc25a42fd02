package service

import (
	"context"
	"time"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/repository/specification"
	"hotel-chatbot-be/internal/repository/unitofwork"
	"hotel-chatbot-be/pkg/answer"
	"hotel-chatbot-be/pkg/dashboard"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetSessionMessages(ctx context.Context, sessionId string) (*dto.SessionMessagesResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	answerProvider answer.Provider
	aggregator     *dashboard.Aggregator
	statsPublisher IStatsPublisherService
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	answerProvider answer.Provider,
	aggregator *dashboard.Aggregator,
	statsPublisher IStatsPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		answerProvider: answerProvider,
		aggregator:     aggregator,
		statsPublisher: statsPublisher,
		logger:         log,
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.logger.Info("ChatService", "Created chat session", map[string]interface{}{
		"sessionId": session.Id,
	})

	return &dto.CreateSessionResponse{SessionId: session.Id}, nil
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}

	// answer_found carries no meaning on user rows; keep the column default.
	userMessage := entity.Message{
		SessionId:   req.SessionId,
		Role:        entity.MessageRoleUser,
		Content:     req.Message,
		AnswerFound: true,
		CreatedAt:   time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	pdfContent := ""
	doc, err := uow.PdfDocumentRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		pdfContent = doc.Content
	}

	resp := s.answerProvider.Ask(ctx, answer.Request{
		Message:    req.Message,
		PdfContent: pdfContent,
		SessionId:  req.SessionId,
	})

	category := resp.Category
	assistantMessage := entity.Message{
		SessionId:   req.SessionId,
		Role:        entity.MessageRoleAssistant,
		Content:     resp.Answer,
		Category:    &category,
		AnswerFound: resp.AnswerFound,
		CreatedAt:   time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	s.pushStats(ctx, uow)

	return &dto.SendMessageResponse{
		Answer:      resp.Answer,
		Category:    resp.Category,
		AnswerFound: resp.AnswerFound,
	}, nil
}

func (s *chatService) GetSessionMessages(ctx context.Context, sessionId string) (*dto.SessionMessagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unknown sessions just come back empty; the widget polls its own
	// token, so there is no row to protect here.
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.MessageResponse{
			Id:          m.Id,
			SessionId:   m.SessionId,
			Role:        m.Role,
			Content:     m.Content,
			Category:    m.Category,
			AnswerFound: m.AnswerFound,
			CreatedAt:   m.CreatedAt,
		})
	}

	return &dto.SessionMessagesResponse{Messages: items}, nil
}

// pushStats recomputes the dashboard rollup and fans it out to connected
// admin clients. A chat turn never fails because the push did.
func (s *chatService) pushStats(ctx context.Context, uow unitofwork.UnitOfWork) {
	stats := s.aggregator.GetStats(ctx, uow)
	if err := s.statsPublisher.PublishStats(stats); err != nil {
		s.logger.Warn("ChatService", "Failed to publish stats update", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
