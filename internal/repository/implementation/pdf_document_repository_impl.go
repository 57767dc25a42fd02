package implementation

import (
	"context"
	"errors"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/mapper"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PdfDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewPdfDocumentRepository(db *gorm.DB) contract.PdfDocumentRepository {
	return &PdfDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *PdfDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.PdfDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *PdfDocumentRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.PdfDocument{}).Error
}

func (r *PdfDocumentRepositoryImpl) FindLatest(ctx context.Context) (*entity.PdfDocument, error) {
	var m model.PdfDocument
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
