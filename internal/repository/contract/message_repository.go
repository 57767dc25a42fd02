package contract

import (
	"context"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteBySessionIDs(ctx context.Context, sessionIds []string) error

	// Reporting queries.
	CountUnanswered(ctx context.Context) (int64, error)
	CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error)
	UnansweredQuestions(ctx context.Context, limit int) ([]*entity.UnansweredQuestion, error)
	PopularQuestions(ctx context.Context, limit int) ([]*entity.PopularQuestion, error)
	DailyStats(ctx context.Context, days int) ([]*entity.DailyStat, error)
}
