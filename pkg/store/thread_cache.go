package store

import (
	"context"

	"github.com/google/uuid"
)

// ThreadCache maps an assistant thread id to its conversation id so that
// hot chat sessions skip the database lookup.
type ThreadCache interface {
	Get(ctx context.Context, threadID string) (uuid.UUID, bool)
	Set(ctx context.Context, threadID string, conversationID uuid.UUID)
	Delete(ctx context.Context, threadID string)
}
