package implementation

import (
	"context"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/mapper"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/repository/contract"
	"hotel-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var models []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MessageRepositoryImpl) DeleteBySessionIDs(ctx context.Context, sessionIds []string) error {
	return r.db.WithContext(ctx).Where("session_id IN ?", sessionIds).Delete(&model.Message{}).Error
}

// CountUnanswered counts assistant replies flagged as unanswered. The flag
// only carries meaning on assistant rows, so the predicate is pinned to that
// role.
func (r *MessageRepositoryImpl) CountUnanswered(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("role = ? AND answer_found = ?", entity.MessageRoleAssistant, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MessageRepositoryImpl) CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error) {
	var rows []*entity.CategoryCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT category, COUNT(*) AS count
		FROM messages
		WHERE role = 'assistant' AND category IS NOT NULL AND category != ''
		GROUP BY category
		ORDER BY count DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UnansweredQuestions correlates each unanswered assistant reply back to the
// user question that preceded it within the same session.
func (r *MessageRepositoryImpl) UnansweredQuestions(ctx context.Context, limit int) ([]*entity.UnansweredQuestion, error) {
	var rows []*entity.UnansweredQuestion
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT content FROM messages m2
			 WHERE m2.session_id = m1.session_id
			 AND m2.role = 'user'
			 AND m2.id < m1.id
			 ORDER BY m2.id DESC
			 LIMIT 1) AS question,
			m1.created_at AS timestamp
		FROM messages m1
		WHERE m1.role = 'assistant' AND m1.answer_found = 0
		ORDER BY m1.created_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Unanswered replies at the very start of a session have no preceding
	// user question; drop them like the dashboard expects.
	filtered := make([]*entity.UnansweredQuestion, 0, len(rows))
	for _, row := range rows {
		if row.Question != "" {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (r *MessageRepositoryImpl) PopularQuestions(ctx context.Context, limit int) ([]*entity.PopularQuestion, error) {
	var rows []*entity.PopularQuestion
	err := r.db.WithContext(ctx).Raw(`
		SELECT content, COUNT(*) AS count
		FROM messages
		WHERE role = 'user'
		GROUP BY LOWER(TRIM(content))
		HAVING COUNT(*) > 1
		ORDER BY count DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MessageRepositoryImpl) DailyStats(ctx context.Context, days int) ([]*entity.DailyStat, error) {
	var rows []*entity.DailyStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(created_at) AS date,
			COUNT(DISTINCT session_id) AS sessions,
			COUNT(*) AS messages
		FROM messages
		WHERE created_at >= datetime('now', '-' || ? || ' days')
		GROUP BY DATE(created_at)
		ORDER BY date ASC`, days).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
