package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roofing-site-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber reads domain events back from the stream written by Publisher.
type Subscriber struct {
	nc   *nats.Conn
	js   jetstream.JetStream
	cctx jetstream.ConsumeContext
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// DecodeEvent parses the envelope produced by Publisher.Publish.
func DecodeEvent(data []byte) (events.Event, error) {
	var envelope struct {
		Type       string                 `json:"type"`
		Data       map[string]interface{} `json:"data"`
		OccurredAt time.Time              `json:"occurred_at"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Type == "" {
		return nil, fmt.Errorf("event without type")
	}
	return events.BaseEvent{
		Type:       envelope.Type,
		Data:       envelope.Data,
		OccurredAt: envelope.OccurredAt,
	}, nil
}

// Subscribe attaches a consumer to the stream. An empty durableName creates an
// ephemeral consumer that only sees new messages.
func (s *Subscriber) Subscribe(ctx context.Context, subject, durableName string, handler EventHandler) error {
	cfg := jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	}
	if durableName == "" {
		cfg.DeliverPolicy = jetstream.DeliverNewPolicy
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, cfg)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cctx, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := DecodeEvent(msg.Data())
		if err != nil {
			log.Printf("Dropping malformed event on %s: %v", msg.Subject(), err)
			_ = msg.Term()
			return
		}

		if err := handler(ctx, event); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject(), err)
			_ = msg.Nak()
			return
		}

		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.cctx = cctx

	return nil
}

func (s *Subscriber) Close() {
	if s.cctx != nil {
		s.cctx.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
