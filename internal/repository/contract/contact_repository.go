package contract

import (
	"context"

	"roofing-site-be/internal/entity"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error)
	List(ctx context.Context, filter ContactFilter) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, filter ContactFilter) (int64, error)
	SetContacted(ctx context.Context, id uuid.UUID, contacted bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
