// FILE: internal/dto/chat_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartConversationResponse struct {
	ThreadId       string    `json:"thread_id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	Greeting       string    `json:"greeting,omitempty"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type SendMessageResponse struct {
	ThreadId string              `json:"thread_id"`
	Reply    ChatMessageResponse `json:"reply"`
	// Source is "rule" for quick replies and "assistant" otherwise.
	Source string `json:"source"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateChatContactRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

type ConversationResponse struct {
	Id        uuid.UUID `json:"id"`
	ThreadId  string    `json:"thread_id"`
	UserName  *string   `json:"user_name"`
	UserEmail *string   `json:"user_email"`
	UserPhone *string   `json:"user_phone"`
	Contacted bool      `json:"contacted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConversationDetailResponse struct {
	ConversationResponse
	Messages []ChatMessageResponse `json:"messages"`
}

type ListConversationsRequest struct {
	Contacted string `query:"contacted" validate:"omitempty,oneof=all true false"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}
