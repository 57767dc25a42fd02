package mapper

import (
	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.PdfDocument) *entity.PdfDocument {
	if d == nil {
		return nil
	}
	return &entity.PdfDocument{
		Id:         d.Id,
		Filename:   d.Filename,
		Content:    d.Content,
		FilePath:   d.FilePath,
		UploadedAt: d.UploadedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.PdfDocument) *model.PdfDocument {
	if d == nil {
		return nil
	}
	return &model.PdfDocument{
		Id:         d.Id,
		Filename:   d.Filename,
		Content:    d.Content,
		FilePath:   d.FilePath,
		UploadedAt: d.UploadedAt,
	}
}
