package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

type ChatConversation struct {
	Id        uuid.UUID
	ThreadId  string
	UserName  *string
	UserEmail *string
	UserPhone *string
	Contacted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Sender         ChatSender
	Content        string
	CreatedAt      time.Time
}
