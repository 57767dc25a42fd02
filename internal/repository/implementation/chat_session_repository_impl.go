package implementation

import (
	"context"
	"errors"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/mapper"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/repository/contract"
	"hotel-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChatSession{}).Error
}

func (r *ChatSessionRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ChatSession{}).Error
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatSessionRepositoryImpl) FindSummaries(ctx context.Context, limit, offset int) ([]*entity.SessionSummary, error) {
	var rows []*entity.SessionSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.created_at,
			COUNT(m.id) AS message_count,
			(SELECT content FROM messages
			 WHERE session_id = s.id AND role = 'user'
			 ORDER BY created_at LIMIT 1) AS first_message,
			MAX(m.created_at) AS last_activity
		FROM chat_sessions s
		LEFT JOIN messages m ON s.id = m.session_id
		GROUP BY s.id
		ORDER BY s.created_at DESC
		LIMIT ? OFFSET ?`, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ChatSessionRepositoryImpl) ExportRows(ctx context.Context) ([]*entity.SessionExportRow, error) {
	var rows []*entity.SessionExportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.created_at,
			COUNT(m.id) AS message_count,
			COALESCE(SUM(CASE WHEN m.role = 'assistant' AND m.answer_found = 0 THEN 1 ELSE 0 END), 0) AS unanswered_count
		FROM chat_sessions s
		LEFT JOIN messages m ON s.id = m.session_id
		GROUP BY s.id
		ORDER BY s.created_at DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
