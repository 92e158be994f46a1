package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

type ContactedIs struct {
	Contacted bool
}

func (s ContactedIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contacted = ?", s.Contacted)
}
