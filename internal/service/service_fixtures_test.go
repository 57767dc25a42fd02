package service

import (
	"context"
	"path/filepath"
	"testing"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/pkg/mailer"
	"hotel-chatbot-be/internal/repository/unitofwork"
	"hotel-chatbot-be/pkg/answer"
	"hotel-chatbot-be/pkg/dashboard"
	"hotel-chatbot-be/pkg/database"
	"hotel-chatbot-be/pkg/pdfextract"

	"gorm.io/gorm"
)

// Shared fakes and fixtures for the service tests.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewGormDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = database.Migrate(db,
		&model.ChatSession{},
		&model.Message{},
		&model.ContactSubmission{},
		&model.PdfDocument{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestUowFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

type fakeAnswerProvider struct {
	response answer.Response
	requests []answer.Request
}

func (f *fakeAnswerProvider) Ask(ctx context.Context, req answer.Request) answer.Response {
	f.requests = append(f.requests, req)
	return f.response
}

type fakeStatsPublisher struct {
	published []*dto.ChatStats
	err       error
}

func (f *fakeStatsPublisher) PublishStats(stats *dto.ChatStats) error {
	f.published = append(f.published, stats)
	return f.err
}

type fakeMailer struct {
	sent []mailer.ContactNotification
	err  error
}

func (f *fakeMailer) SendContactNotification(n mailer.ContactNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type fakeExtractor struct {
	result *pdfextract.Result
	err    error
}

func (f *fakeExtractor) Extract(path string) (*pdfextract.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestAggregator() *dashboard.Aggregator {
	return dashboard.NewAggregator(noopLogger{})
}
