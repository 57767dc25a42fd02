package contract

import (
	"context"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindSummaries lists sessions joined with their message rollups for
	// the admin dashboard.
	FindSummaries(ctx context.Context, limit, offset int) ([]*entity.SessionSummary, error)

	// ExportRows returns every session with message and unanswered counts.
	ExportRows(ctx context.Context) ([]*entity.SessionExportRow, error)
}
