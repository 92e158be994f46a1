package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByThreadID struct {
	ThreadID string
}

func (s ByThreadID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("thread_id = ?", s.ThreadID)
}

type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ByUserEmail matches the contact email a visitor left in the widget.
type ByUserEmail struct {
	Email string
}

func (s ByUserEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(user_email) = LOWER(?)", s.Email)
}
