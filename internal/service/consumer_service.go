package service

import (
	"context"
	"encoding/json"

	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists admin log messages published by the audit recorder.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: a row that cannot be written is logged, not retried.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload auditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("AUDIT", "Dropping malformed admin log message", map[string]interface{}{"error": err.Error()})
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AdminLogRepository().Create(ctx, payload.toEntity()); err != nil {
		cs.logger.Error("AUDIT", "Failed to persist admin log", map[string]interface{}{
			"error":        err.Error(),
			"action":       payload.Action,
			"performed_by": payload.PerformedBy.String(),
			"target_id":    payload.TargetId,
		})
	}
}
