package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/repository/specification"
	"hotel-chatbot-be/internal/repository/unitofwork"
	"hotel-chatbot-be/pkg/dashboard"
	"hotel-chatbot-be/pkg/pdfextract"
)

const (
	defaultPageLimit = 50
	csvTimeLayout    = "2006-01-02 15:04:05"
)

type IAdminService interface {
	UploadPdf(ctx context.Context, filename, filePath string) (*dto.UploadPdfResponse, error)
	GetPdfInfo(ctx context.Context) (*dto.PdfInfoResponse, error)
	GetPdfContent(ctx context.Context) (*dto.PdfContentResponse, error)

	GetStats(ctx context.Context) *dto.ChatStats
	GetPopularQuestions(ctx context.Context, limit int) (*dto.PopularQuestionsResponse, error)
	GetDailyStats(ctx context.Context, days int) (*dto.DailyStatsResponse, error)

	ListContacts(ctx context.Context, limit, offset int) (*dto.ListContactsResponse, error)
	DeleteContact(ctx context.Context, id int64) (*dto.DeleteResponse, error)
	BulkDeleteContacts(ctx context.Context, req *dto.BulkDeleteContactsRequest) (*dto.DeleteResponse, error)

	ListSessions(ctx context.Context, limit, offset int) (*dto.ListSessionsResponse, error)
	GetSessionDetail(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error)
	DeleteSession(ctx context.Context, sessionId string) (*dto.DeleteResponse, error)
	BulkDeleteSessions(ctx context.Context, req *dto.BulkDeleteSessionsRequest) (*dto.DeleteResponse, error)

	ExportSessionsCSV(ctx context.Context) (string, error)
	ExportContactsCSV(ctx context.Context) (string, error)
	ExportMessagesCSV(ctx context.Context) (string, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	extractor  pdfextract.TextExtractor
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	extractor pdfextract.TextExtractor,
	aggregator *dashboard.Aggregator,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		extractor:  extractor,
		aggregator: aggregator,
		logger:     log,
	}
}

// UploadPdf extracts the document text, then swaps the singleton knowledge
// base row inside a transaction so readers never see zero or two documents.
func (s *adminService) UploadPdf(ctx context.Context, filename, filePath string) (*dto.UploadPdfResponse, error) {
	result, err := s.extractor.Extract(filePath)
	if err != nil {
		return nil, serverutils.BadRequest("Failed to parse PDF file")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.PdfDocumentRepository().DeleteAll(ctx); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	doc := entity.PdfDocument{
		Filename:   filename,
		Content:    result.Text,
		FilePath:   filePath,
		UploadedAt: time.Now(),
	}
	if err := uow.PdfDocumentRepository().Create(ctx, &doc); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("AdminService", "Replaced knowledge base PDF", map[string]interface{}{
		"filename":  filename,
		"pageCount": result.PageCount,
	})

	return &dto.UploadPdfResponse{
		Success:   true,
		Message:   "PDF uploaded successfully",
		Filename:  filename,
		PageCount: result.PageCount,
	}, nil
}

func (s *adminService) GetPdfInfo(ctx context.Context) (*dto.PdfInfoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.PdfDocumentRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &dto.PdfInfoResponse{HasPdf: false}, nil
	}

	uploadedAt := doc.UploadedAt
	return &dto.PdfInfoResponse{
		HasPdf:     true,
		Filename:   doc.Filename,
		UploadedAt: &uploadedAt,
	}, nil
}

func (s *adminService) GetPdfContent(ctx context.Context) (*dto.PdfContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.PdfDocumentRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	content := ""
	if doc != nil {
		content = doc.Content
	}
	return &dto.PdfContentResponse{Content: content}, nil
}

func (s *adminService) GetStats(ctx context.Context) *dto.ChatStats {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetStats(ctx, uow)
}

func (s *adminService) GetPopularQuestions(ctx context.Context, limit int) (*dto.PopularQuestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetPopularQuestions(ctx, uow, limit)
}

func (s *adminService) GetDailyStats(ctx context.Context, days int) (*dto.DailyStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetDailyStats(ctx, uow, days)
}

func (s *adminService) ListContacts(ctx context.Context, limit, offset int) (*dto.ListContactsResponse, error) {
	limit, offset = normalizePage(limit, offset)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ContactRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := uow.ContactRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContactListItem, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, dto.ContactListItem{
			Id:                 c.Id,
			SessionId:          c.SessionId,
			Name:               c.Name,
			Phone:              c.Phone,
			Email:              c.Email,
			UnansweredQuestion: c.UnansweredQuestion,
			CreatedAt:          c.CreatedAt,
		})
	}

	return &dto.ListContactsResponse{
		Contacts: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (s *adminService) DeleteContact(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ContactRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{Success: true, Message: "Contact deleted"}, nil
}

func (s *adminService) BulkDeleteContacts(ctx context.Context, req *dto.BulkDeleteContactsRequest) (*dto.DeleteResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ContactRepository().DeleteByIDs(ctx, req.Ids); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{
		Success: true,
		Message: fmt.Sprintf("%d contacts deleted", len(req.Ids)),
	}, nil
}

func (s *adminService) ListSessions(ctx context.Context, limit, offset int) (*dto.ListSessionsResponse, error) {
	limit, offset = normalizePage(limit, offset)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := uow.ChatSessionRepository().FindSummaries(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SessionListItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.SessionListItem{
			Id:           s.Id,
			CreatedAt:    s.CreatedAt,
			MessageCount: s.MessageCount,
			FirstMessage: s.FirstMessage,
			LastActivity: s.LastActivity,
		})
	}

	return &dto.ListSessionsResponse{
		Sessions: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (s *adminService) GetSessionDetail(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}

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

	return &dto.SessionDetailResponse{
		Session: dto.SessionInfo{
			Id:        session.Id,
			CreatedAt: session.CreatedAt,
		},
		Messages: items,
	}, nil
}

func (s *adminService) DeleteSession(ctx context.Context, sessionId string) (*dto.DeleteResponse, error) {
	return s.deleteSessions(ctx, []string{sessionId}, "Session deleted")
}

func (s *adminService) BulkDeleteSessions(ctx context.Context, req *dto.BulkDeleteSessionsRequest) (*dto.DeleteResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return s.deleteSessions(ctx, req.Ids, fmt.Sprintf("%d sessions deleted", len(req.Ids)))
}

// deleteSessions removes the named sessions and their messages in one
// transaction.
func (s *adminService) deleteSessions(ctx context.Context, ids []string, message string) (*dto.DeleteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.MessageRepository().DeleteBySessionIDs(ctx, ids); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.ChatSessionRepository().DeleteByIDs(ctx, ids); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{Success: true, Message: message}, nil
}

func (s *adminService) ExportSessionsCSV(ctx context.Context) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.ChatSessionRepository().ExportRows(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Session ID,Created At,Message Count,Unanswered Count")
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s,%s,%d,%d",
			csvQuote(r.Id),
			csvQuote(r.CreatedAt.Format(csvTimeLayout)),
			r.MessageCount,
			r.UnansweredCount,
		))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *adminService) ExportContactsCSV(ctx context.Context) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contacts, err := uow.ContactRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(contacts)+1)
	lines = append(lines, "ID,Name,Phone,Email,Question,Created At")
	for _, c := range contacts {
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%s,%s,%s",
			c.Id,
			csvQuote(c.Name),
			csvQuote(derefString(c.Phone)),
			csvQuote(c.Email),
			csvQuote(derefString(c.UnansweredQuestion)),
			csvQuote(c.CreatedAt.Format(csvTimeLayout)),
		))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *adminService) ExportMessagesCSV(ctx context.Context) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(messages)+1)
	lines = append(lines, "ID,Session ID,Role,Content,Category,Answer Found,Created At")
	for _, m := range messages {
		answerFound := 0
		if m.AnswerFound {
			answerFound = 1
		}
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%s,%s,%d,%s",
			m.Id,
			csvQuote(m.SessionId),
			csvQuote(m.Role),
			csvQuote(m.Content),
			csvQuote(derefString(m.Category)),
			answerFound,
			csvQuote(m.CreatedAt.Format(csvTimeLayout)),
		))
	}
	return strings.Join(lines, "\n"), nil
}

// csvQuote wraps a field in double quotes, doubling any embedded quote.
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func normalizePage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
