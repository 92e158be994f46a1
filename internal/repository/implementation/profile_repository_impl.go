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

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *ProfileRepositoryImpl) filterSpecs(filter contract.ProfileFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.Query != "" {
		specs = append(specs, specification.ProfileSearch{Query: filter.Query})
	}
	if filter.Role != "" {
		specs = append(specs, specification.ByRole{Role: filter.Role})
	}
	return specs
}

func (r *ProfileRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var row model.Profile
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&row), nil
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	row := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(row)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	row := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(row)
	return nil
}

func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ProfileRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return r.findOne(ctx, specification.ByUsername{Username: username})
}

func (r *ProfileRepositoryImpl) List(ctx context.Context, filter contract.ProfileFilter) ([]*entity.Profile, error) {
	var rows []*model.Profile
	specs := append(r.filterSpecs(filter), specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProfilesToEntities(rows), nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context, filter contract.ProfileFilter) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Profile{}), r.filterSpecs(filter)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Profile{})
	return result.RowsAffected, result.Error
}
