package mapper

import (
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ProfileToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:        p.Id,
		FullName:  p.FullName,
		Username:  p.Username,
		Role:      entity.UserRole(p.Role),
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *UserMapper) ProfileToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:        p.Id,
		FullName:  p.FullName,
		Username:  p.Username,
		Role:      string(p.Role),
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *UserMapper) ProfilesToEntities(items []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(items))
	for i, p := range items {
		entities[i] = m.ProfileToEntity(p)
	}
	return entities
}

func (m *UserMapper) AuthUserToEntity(u *model.AuthUser) *entity.AuthUser {
	if u == nil {
		return nil
	}
	return &entity.AuthUser{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) AuthUserToModel(u *entity.AuthUser) *model.AuthUser {
	if u == nil {
		return nil
	}
	return &model.AuthUser{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
