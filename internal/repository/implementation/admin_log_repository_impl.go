package implementation

import (
	"context"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/mapper"
	"roofing-site-be/internal/model"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/scope"
	"roofing-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminLogMapper
}

func NewAdminLogRepository(db *gorm.DB) contract.AdminLogRepository {
	return &AdminLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminLogMapper(),
	}
}

func (r *AdminLogRepositoryImpl) filterSpecs(filter contract.AdminLogFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.Action != "" {
		specs = append(specs, specification.ByAction{Action: filter.Action})
	}
	if filter.PerformedBy != nil {
		specs = append(specs, specification.ByPerformedBy{UserID: *filter.PerformedBy})
	}
	return specs
}

func (r *AdminLogRepositoryImpl) Create(ctx context.Context, log *entity.AdminLog) error {
	row, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(row)
	return nil
}

func (r *AdminLogRepositoryImpl) List(ctx context.Context, filter contract.AdminLogFilter) ([]*entity.AdminLog, error) {
	var rows []*model.AdminLog
	specs := append(r.filterSpecs(filter), specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows), nil
}

func (r *AdminLogRepositoryImpl) Count(ctx context.Context, filter contract.AdminLogFilter) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AdminLog{}), r.filterSpecs(filter)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdminLogRepositoryImpl) DeleteByPerformer(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := applySpecifications(r.db.WithContext(ctx), specification.ByPerformedBy{UserID: userID}).
		Delete(&model.AdminLog{})
	return result.RowsAffected, result.Error
}
