package implementation

import (
	"context"
	"errors"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/mapper"
	"roofing-site-be/internal/model"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewAuthUserRepository(db *gorm.DB) contract.AuthUserRepository {
	return &AuthUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *AuthUserRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.AuthUser, error) {
	var row model.AuthUser
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AuthUserToEntity(&row), nil
}

func (r *AuthUserRepositoryImpl) Create(ctx context.Context, user *entity.AuthUser) error {
	row := r.mapper.AuthUserToModel(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*user = *r.mapper.AuthUserToEntity(row)
	return nil
}

func (r *AuthUserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *AuthUserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email})
}

func (r *AuthUserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AuthUser{})
	return result.RowsAffected, result.Error
}
