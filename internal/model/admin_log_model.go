package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminLog struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action      string         `gorm:"type:varchar(100);not null;index"`
	PerformedBy uuid.UUID      `gorm:"type:uuid;not null;index"`
	TargetId    string         `gorm:"type:varchar(255)"`
	Details     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"default:now();not null;index"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
