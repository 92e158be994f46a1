package events

import (
	"context"
	"time"

	"roofing-site-be/internal/pkg/logger"
	pkgEvents "roofing-site-be/pkg/events"

	"github.com/google/uuid"
)

const (
	TypeContactSubmitted = "CONTACT_SUBMITTED"
	TypeChatStarted      = "CHAT_STARTED"
	TypeUserDeleted      = "USER_DELETED"
)

// Sink is the transport behind Publisher; *nats.Publisher satisfies it.
type Sink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// Publisher emits domain events. Every method is best-effort.
type Publisher interface {
	PublishContactSubmitted(ctx context.Context, contactId uuid.UUID, name, email string)
	PublishChatStarted(ctx context.Context, conversationId uuid.UUID, threadId string)
	PublishUserDeleted(ctx context.Context, userId, performedBy uuid.UUID)
}

type NatsPublisher struct {
	sink   Sink
	logger logger.ILogger
}

// NewNatsPublisher accepts a nil sink, in which case events are dropped.
func NewNatsPublisher(sink Sink, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		sink:   sink,
		logger: logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.sink == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishContactSubmitted(ctx context.Context, contactId uuid.UUID, name, email string) {
	p.publish(ctx, TypeContactSubmitted, map[string]interface{}{
		"contact_id":  contactId.String(),
		"name":        name,
		"email":       email,
		"entity_type": "contact_submission",
		"entity_id":   contactId.String(),
	})
}

func (p *NatsPublisher) PublishChatStarted(ctx context.Context, conversationId uuid.UUID, threadId string) {
	p.publish(ctx, TypeChatStarted, map[string]interface{}{
		"conversation_id": conversationId.String(),
		"thread_id":       threadId,
		"entity_type":     "chat_conversation",
		"entity_id":       conversationId.String(),
	})
}

func (p *NatsPublisher) PublishUserDeleted(ctx context.Context, userId, performedBy uuid.UUID) {
	data := map[string]interface{}{
		"user_id":     userId.String(),
		"entity_type": "user",
		"entity_id":   userId.String(),
	}
	if performedBy != uuid.Nil {
		data["performed_by"] = performedBy.String()
	}
	p.publish(ctx, TypeUserDeleted, data)
}
