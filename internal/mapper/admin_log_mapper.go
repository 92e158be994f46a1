package mapper

import (
	"encoding/json"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/model"

	"gorm.io/datatypes"
)

type AdminLogMapper struct{}

func NewAdminLogMapper() *AdminLogMapper {
	return &AdminLogMapper{}
}

func (m *AdminLogMapper) ToEntity(l *model.AdminLog) *entity.AdminLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		// Unreadable payloads are surfaced as an empty map rather than failing the listing.
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.AdminLog{
		Id:          l.Id,
		Action:      l.Action,
		PerformedBy: l.PerformedBy,
		TargetId:    l.TargetId,
		Details:     details,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *AdminLogMapper) ToModel(l *entity.AdminLog) (*model.AdminLog, error) {
	if l == nil {
		return nil, nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		raw, err := json.Marshal(l.Details)
		if err != nil {
			return nil, err
		}
		details = datatypes.JSON(raw)
	}
	return &model.AdminLog{
		Id:          l.Id,
		Action:      l.Action,
		PerformedBy: l.PerformedBy,
		TargetId:    l.TargetId,
		Details:     details,
		CreatedAt:   l.CreatedAt,
	}, nil
}

func (m *AdminLogMapper) ToEntities(items []*model.AdminLog) []*entity.AdminLog {
	entities := make([]*entity.AdminLog, len(items))
	for i, l := range items {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
