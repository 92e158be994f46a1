package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(50)"`
	Message   string    `gorm:"type:text;not null"`
	Consent   bool      `gorm:"not null;default:false"`
	Contacted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
