package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Username  *string   `gorm:"type:varchar(100);uniqueIndex"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

type AuthUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}
