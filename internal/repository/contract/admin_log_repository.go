package contract

import (
	"context"

	"roofing-site-be/internal/entity"

	"github.com/google/uuid"
)

type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error
	List(ctx context.Context, filter AdminLogFilter) ([]*entity.AdminLog, error)
	Count(ctx context.Context, filter AdminLogFilter) (int64, error)
	DeleteByPerformer(ctx context.Context, userID uuid.UUID) (int64, error)
}
