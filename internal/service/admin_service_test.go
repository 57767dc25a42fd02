package service

import (
	"context"
	"strings"
	"testing"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/repository/unitofwork"
	"hotel-chatbot-be/pkg/pdfextract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminServiceForTest(t *testing.T, extractor pdfextract.TextExtractor) (IAdminService, unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := NewAdminService(uowFactory, extractor, newTestAggregator(), noopLogger{})
	return svc, uowFactory, db
}

func TestUploadPdfReplacesSingleton(t *testing.T) {
	extractor := &fakeExtractor{result: &pdfextract.Result{Text: "first content", PageCount: 3}}
	svc, uowFactory, db := newAdminServiceForTest(t, extractor)
	ctx := context.Background()

	res, err := svc.UploadPdf(ctx, "hotel-v1.pdf", "uploads/hotel-info.pdf")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "hotel-v1.pdf", res.Filename)
	assert.Equal(t, 3, res.PageCount)

	extractor.result = &pdfextract.Result{Text: "second content", PageCount: 5}
	res, err = svc.UploadPdf(ctx, "hotel-v2.pdf", "uploads/hotel-info.pdf")
	require.NoError(t, err)
	assert.Equal(t, 5, res.PageCount)

	var count int64
	require.NoError(t, db.Model(&model.PdfDocument{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	doc, err := uowFactory.NewUnitOfWork(ctx).PdfDocumentRepository().FindLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "hotel-v2.pdf", doc.Filename)
	assert.Equal(t, "second content", doc.Content)
}

func TestUploadPdfExtractFailure(t *testing.T) {
	svc, _, _ := newAdminServiceForTest(t, &fakeExtractor{err: assert.AnError})

	_, err := svc.UploadPdf(context.Background(), "broken.pdf", "uploads/hotel-info.pdf")
	require.Error(t, err)

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestGetPdfInfoAndContent(t *testing.T) {
	extractor := &fakeExtractor{result: &pdfextract.Result{Text: "knowledge", PageCount: 1}}
	svc, _, _ := newAdminServiceForTest(t, extractor)
	ctx := context.Background()

	info, err := svc.GetPdfInfo(ctx)
	require.NoError(t, err)
	assert.False(t, info.HasPdf)

	content, err := svc.GetPdfContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", content.Content)

	_, err = svc.UploadPdf(ctx, "hotel.pdf", "uploads/hotel-info.pdf")
	require.NoError(t, err)

	info, err = svc.GetPdfInfo(ctx)
	require.NoError(t, err)
	assert.True(t, info.HasPdf)
	assert.Equal(t, "hotel.pdf", info.Filename)
	require.NotNil(t, info.UploadedAt)

	content, err = svc.GetPdfContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "knowledge", content.Content)
}

func TestExportContactsCSVEscapesQuotes(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ContactRepository().Create(ctx, &entity.ContactSubmission{
		Name:  `O"Brien`,
		Email: "obrien@example.com",
	}))

	csv, err := svc.ExportContactsCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Phone,Email,Question,Created At", lines[0])
	assert.Contains(t, lines[1], `"O""Brien"`)
	assert.Contains(t, lines[1], `"obrien@example.com"`)
}

func TestExportSessionsCSVIncludesUnansweredCount(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "session-a", []entity.Message{
		{Role: entity.MessageRoleUser, Content: "Do you allow pets?", AnswerFound: true},
		{Role: entity.MessageRoleAssistant, Content: "I'm not sure.", AnswerFound: false},
	})

	csv, err := svc.ExportSessionsCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Session ID,Created At,Message Count,Unanswered Count", lines[0])
	assert.Contains(t, lines[1], `"session-a"`)
	assert.True(t, strings.HasSuffix(lines[1], ",2,1"), "expected message and unanswered counts, got %q", lines[1])
}

func TestExportMessagesCSV(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "session-a", []entity.Message{
		{Role: entity.MessageRoleUser, Content: `He said "hello"`, AnswerFound: true},
	})

	csv, err := svc.ExportMessagesCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Session ID,Role,Content,Category,Answer Found,Created At", lines[0])
	assert.Contains(t, lines[1], `"He said ""hello"""`)
}

func TestBulkDeleteSessionsRemovesExactlyNamedIds(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		seedConversation(t, uowFactory, id, []entity.Message{
			{Role: entity.MessageRoleUser, Content: "hello from " + id, AnswerFound: true},
		})
	}

	res, err := svc.BulkDeleteSessions(ctx, &dto.BulkDeleteSessionsRequest{Ids: []string{"s1", "s3"}})
	require.NoError(t, err)
	assert.True(t, res.Success)

	uow := uowFactory.NewUnitOfWork(ctx)
	remaining, err := uow.ChatSessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	survivor, err := uow.ChatSessionRepository().FindOne(ctx)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Equal(t, "s2", survivor.Id)

	messages, err := uow.MessageRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "s2", messages[0].SessionId)
}

func TestBulkDeleteValidation(t *testing.T) {
	svc, _, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	_, err := svc.BulkDeleteSessions(ctx, &dto.BulkDeleteSessionsRequest{})
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	_, err = svc.BulkDeleteContacts(ctx, &dto.BulkDeleteContactsRequest{Ids: []int64{}})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestListContactsPagination(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	uow := uowFactory.NewUnitOfWork(ctx)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, uow.ContactRepository().Create(ctx, &entity.ContactSubmission{
			Name:  name,
			Email: name + "@example.com",
		}))
	}

	res, err := svc.ListContacts(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Contacts, 2)
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 0, res.Offset)

	res, err = svc.ListContacts(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, res.Contacts, 1)

	// Defaults kick in for out-of-range values.
	res, err = svc.ListContacts(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestListSessionsSummaries(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "s1", []entity.Message{
		{Role: entity.MessageRoleUser, Content: "first question", AnswerFound: true},
		{Role: entity.MessageRoleAssistant, Content: "answer", AnswerFound: true},
	})

	res, err := svc.ListSessions(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Sessions, 1)

	s := res.Sessions[0]
	assert.Equal(t, "s1", s.Id)
	assert.Equal(t, int64(2), s.MessageCount)
	require.NotNil(t, s.FirstMessage)
	assert.Equal(t, "first question", *s.FirstMessage)
	assert.NotNil(t, s.LastActivity)
}

func TestGetSessionDetail(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "s1", []entity.Message{
		{Role: entity.MessageRoleUser, Content: "hi", AnswerFound: true},
	})

	res, err := svc.GetSessionDetail(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", res.Session.Id)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "hi", res.Messages[0].Content)

	_, err = svc.GetSessionDetail(ctx, "missing")
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestDeleteContact(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	uow := uowFactory.NewUnitOfWork(ctx)
	contact := entity.ContactSubmission{Name: "A", Email: "a@example.com"}
	require.NoError(t, uow.ContactRepository().Create(ctx, &contact))

	res, err := svc.DeleteContact(ctx, contact.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	count, err := uow.ContactRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetStatsNeverFails(t *testing.T) {
	svc, _, db := newAdminServiceForTest(t, &fakeExtractor{})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	stats := svc.GetStats(context.Background())
	require.NotNil(t, stats)
	assert.Equal(t, int64(0), stats.TotalSessions)
	assert.Equal(t, int64(0), stats.TotalMessages)
	assert.NotNil(t, stats.CategoryStats)
	assert.NotNil(t, stats.UnansweredQuestions)
}

func TestGetPopularQuestionsGroupsCaseInsensitively(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "s1", []entity.Message{
		{Role: entity.MessageRoleUser, Content: "What time is check-in?", AnswerFound: true},
		{Role: entity.MessageRoleUser, Content: "  what time is CHECK-IN?  ", AnswerFound: true},
		{Role: entity.MessageRoleUser, Content: "Is there a pool?", AnswerFound: true},
	})

	res, err := svc.GetPopularQuestions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, int64(2), res.Questions[0].Count)
}

func TestGetDailyStats(t *testing.T) {
	svc, uowFactory, _ := newAdminServiceForTest(t, &fakeExtractor{})
	ctx := context.Background()

	seedConversation(t, uowFactory, "s1", []entity.Message{
		{Role: entity.MessageRoleUser, Content: "hi", AnswerFound: true},
		{Role: entity.MessageRoleAssistant, Content: "hello", AnswerFound: true},
	})

	res, err := svc.GetDailyStats(ctx, 30)
	require.NoError(t, err)
	require.Len(t, res.DailyStats, 1)
	assert.Equal(t, int64(1), res.DailyStats[0].Sessions)
	assert.Equal(t, int64(2), res.DailyStats[0].Messages)
}
