package unitofwork

import (
	"context"

	"hotel-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	MessageRepository() contract.MessageRepository
	ContactRepository() contract.ContactRepository
	PdfDocumentRepository() contract.PdfDocumentRepository
}
