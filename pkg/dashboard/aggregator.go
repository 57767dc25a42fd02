package dashboard

import (
	"context"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/repository/specification"
	"hotel-chatbot-be/internal/repository/unitofwork"
)

const unansweredQuestionsLimit = 20

// Aggregator computes the reporting rollups shown on the admin dashboard.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(log logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: log,
	}
}

// GetStats never fails: the dashboard (and the realtime push after each chat
// turn) always gets a payload, degraded to zeros when a query errors.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) *dto.ChatStats {
	stats, err := a.collectStats(ctx, uow)
	if err != nil {
		a.logger.Error("Dashboard", "Failed to compute chat stats, returning defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return dto.EmptyChatStats()
	}
	return stats
}

func (a *Aggregator) collectStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.ChatStats, error) {
	totalSessions, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	// Only guest questions count towards the message total.
	totalMessages, err := uow.MessageRepository().Count(ctx,
		specification.ByRole{Role: entity.MessageRoleUser},
	)
	if err != nil {
		return nil, err
	}

	unansweredCount, err := uow.MessageRepository().CountUnanswered(ctx)
	if err != nil {
		return nil, err
	}

	categoryCounts, err := uow.MessageRepository().CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	unanswered, err := uow.MessageRepository().UnansweredQuestions(ctx, unansweredQuestionsLimit)
	if err != nil {
		return nil, err
	}

	categoryStats := make([]dto.CategoryStat, 0, len(categoryCounts))
	for _, c := range categoryCounts {
		categoryStats = append(categoryStats, dto.CategoryStat{
			Category: c.Category,
			Count:    c.Count,
		})
	}

	unansweredQuestions := make([]dto.UnansweredQuestionItem, 0, len(unanswered))
	for _, q := range unanswered {
		unansweredQuestions = append(unansweredQuestions, dto.UnansweredQuestionItem{
			Question:  q.Question,
			Timestamp: q.Timestamp,
		})
	}

	return &dto.ChatStats{
		TotalSessions:       totalSessions,
		TotalMessages:       totalMessages,
		UnansweredCount:     unansweredCount,
		CategoryStats:       categoryStats,
		UnansweredQuestions: unansweredQuestions,
	}, nil
}

// GetPopularQuestions lists guest questions asked more than once.
func (a *Aggregator) GetPopularQuestions(ctx context.Context, uow unitofwork.UnitOfWork, limit int) (*dto.PopularQuestionsResponse, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := uow.MessageRepository().PopularQuestions(ctx, limit)
	if err != nil {
		return nil, err
	}

	questions := make([]dto.PopularQuestionItem, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, dto.PopularQuestionItem{
			Content: row.Content,
			Count:   row.Count,
		})
	}
	return &dto.PopularQuestionsResponse{Questions: questions}, nil
}

// GetDailyStats returns the per-day session/message trend for the chart.
func (a *Aggregator) GetDailyStats(ctx context.Context, uow unitofwork.UnitOfWork, days int) (*dto.DailyStatsResponse, error) {
	if days < 1 {
		days = 30
	}

	rows, err := uow.MessageRepository().DailyStats(ctx, days)
	if err != nil {
		return nil, err
	}

	dailyStats := make([]dto.DailyStatItem, 0, len(rows))
	for _, row := range rows {
		dailyStats = append(dailyStats, dto.DailyStatItem{
			Date:     row.Date,
			Sessions: row.Sessions,
			Messages: row.Messages,
		})
	}
	return &dto.DailyStatsResponse{DailyStats: dailyStats}, nil
}
