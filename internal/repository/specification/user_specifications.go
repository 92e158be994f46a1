package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ProfileSearch matches full name, username or email (case-insensitive).
type ProfileSearch struct {
	Query string
}

func (s ProfileSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR username ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
}

type ByPerformedBy struct {
	UserID uuid.UUID
}

func (s ByPerformedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("performed_by = ?", s.UserID)
}

type ByAction struct {
	Action string
}

func (s ByAction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action = ?", s.Action)
}
