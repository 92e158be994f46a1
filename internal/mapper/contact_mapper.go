package mapper

import (
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Consent:   c.Consent,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactSubmission) *model.ContactSubmission {
	if c == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Consent:   c.Consent,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMapper) ToEntities(items []*model.ContactSubmission) []*entity.ContactSubmission {
	entities := make([]*entity.ContactSubmission, len(items))
	for i, c := range items {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
