package contract

import (
	"context"

	"roofing-site-be/internal/entity"

	"github.com/google/uuid"
)

type ChatConversationRepository interface {
	Create(ctx context.Context, conversation *entity.ChatConversation) error
	Update(ctx context.Context, conversation *entity.ChatConversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)
	FindByThreadID(ctx context.Context, threadID string) (*entity.ChatConversation, error)
	List(ctx context.Context, filter ConversationFilter) ([]*entity.ChatConversation, error)
	Count(ctx context.Context, filter ConversationFilter) (int64, error)
	SetContacted(ctx context.Context, id uuid.UUID, contacted bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// ListByConversation returns messages oldest first.
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error)
	DeleteByConversation(ctx context.Context, conversationID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
