package service

import (
	"context"
	"encoding/json"
	"time"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const AuditTopic = "admin_logs"

// Admin log actions.
const (
	ActionContactMarkContacted   = "contact.mark_contacted"
	ActionContactMarkUncontacted = "contact.mark_uncontacted"
	ActionContactDelete          = "contact.delete"
	ActionChatMarkContacted      = "chat.mark_contacted"
	ActionChatMarkUncontacted    = "chat.mark_uncontacted"
	ActionChatDelete             = "chat.delete"
	ActionUserUpdateRole         = "user.update_role"
	ActionUserDelete             = "user.delete"
	ActionSchemaPatch            = "schema.patch"
)

type auditMessage struct {
	Action      string                 `json:"action"`
	PerformedBy uuid.UUID              `json:"performed_by"`
	TargetId    string                 `json:"target_id"`
	Details     map[string]interface{} `json:"details"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

// IAuditRecorder appends admin log rows asynchronously.
type IAuditRecorder interface {
	Record(ctx context.Context, action string, performedBy uuid.UUID, targetId string, details map[string]interface{})
}

type auditRecorder struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewAuditRecorder(publisher message.Publisher, logger logger.ILogger) IAuditRecorder {
	return &auditRecorder{
		publisher: publisher,
		logger:    logger,
	}
}

func (r *auditRecorder) Record(ctx context.Context, action string, performedBy uuid.UUID, targetId string, details map[string]interface{}) {
	payload, err := json.Marshal(auditMessage{
		Action:      action,
		PerformedBy: performedBy,
		TargetId:    targetId,
		Details:     details,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		r.logger.Error("AUDIT", "Failed to encode admin log", map[string]interface{}{"error": err.Error(), "action": action})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(context.WithoutCancel(ctx))
	if err := r.publisher.Publish(AuditTopic, msg); err != nil {
		r.logger.Error("AUDIT", "Failed to publish admin log", map[string]interface{}{"error": err.Error(), "action": action})
	}
}

func (m auditMessage) toEntity() *entity.AdminLog {
	return &entity.AdminLog{
		Id:          uuid.New(),
		Action:      m.Action,
		PerformedBy: m.PerformedBy,
		TargetId:    m.TargetId,
		Details:     m.Details,
		CreatedAt:   m.OccurredAt,
	}
}
