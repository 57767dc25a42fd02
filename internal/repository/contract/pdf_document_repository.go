package contract

import (
	"context"

	"hotel-chatbot-be/internal/entity"
)

type PdfDocumentRepository interface {
	Create(ctx context.Context, doc *entity.PdfDocument) error
	DeleteAll(ctx context.Context) error

	// FindLatest returns the single active document, or nil when the
	// knowledge base is empty.
	FindLatest(ctx context.Context) (*entity.PdfDocument, error)
}
