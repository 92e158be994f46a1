package implementation

import (
	"context"
	"errors"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/mapper"
	"roofing-site-be/internal/model"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/scope"
	"roofing-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMapper(),
	}
}

func (r *ContactRepositoryImpl) filterSpecs(filter contract.ContactFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.Contacted != nil {
		specs = append(specs, specification.ContactedIs{Contacted: *filter.Contacted})
	}
	if filter.Email != "" {
		specs = append(specs, specification.ByEmail{Email: filter.Email})
	}
	return specs
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	row := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ToEntity(row)
	return nil
}

func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error) {
	var row model.ContactSubmission
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row), nil
}

func (r *ContactRepositoryImpl) List(ctx context.Context, filter contract.ContactFilter) ([]*entity.ContactSubmission, error) {
	var rows []*model.ContactSubmission
	specs := append(r.filterSpecs(filter), specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows), nil
}

func (r *ContactRepositoryImpl) Count(ctx context.Context, filter contract.ContactFilter) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ContactSubmission{}), r.filterSpecs(filter)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContactRepositoryImpl) SetContacted(ctx context.Context, id uuid.UUID, contacted bool) error {
	return r.db.WithContext(ctx).Model(&model.ContactSubmission{}).
		Where("id = ?", id).
		Update("contacted", contacted).Error
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactSubmission{}).Error
}
