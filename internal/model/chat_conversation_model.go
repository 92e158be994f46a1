package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatConversation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ThreadId  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserName  *string   `gorm:"type:varchar(255)"`
	UserEmail *string   `gorm:"type:varchar(255);index"`
	UserPhone *string   `gorm:"type:varchar(50)"`
	Contacted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}
