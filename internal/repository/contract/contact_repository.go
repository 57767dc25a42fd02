package contract

import (
	"context"

	"hotel-chatbot-be/internal/entity"
	"hotel-chatbot-be/internal/repository/specification"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.ContactSubmission) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}
