package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminLog struct {
	Id          uuid.UUID
	Action      string
	PerformedBy uuid.UUID
	TargetId    string
	Details     map[string]interface{}
	CreatedAt   time.Time
}
