package contract

import (
	"context"

	"roofing-site-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	List(ctx context.Context, filter ProfileFilter) ([]*entity.Profile, error)
	Count(ctx context.Context, filter ProfileFilter) (int64, error)
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// AuthUserRepository is the credential store. Profiles share its ids.
type AuthUserRepository interface {
	Create(ctx context.Context, user *entity.AuthUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error)
	FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
