package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"roofing-site-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "admin_feed"

// FeedEvent is one entry pushed to the admin live feed.
type FeedEvent struct {
	Type       string      `json:"type"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

// Hub fans feed events out to every connected admin socket. When Redis is
// configured, events are relayed to the other instances as well.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("LIVE_FEED", "Admin connected", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	h.logger.Info("LIVE_FEED", "Admin disconnected", map[string]interface{}{"user_id": client.UserID})
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish delivers the event to local sockets and relays it to other instances.
func (h *Hub) Publish(eventType string, data interface{}) {
	payload, err := json.Marshal(FeedEvent{Type: eventType, Data: data, OccurredAt: time.Now()})
	if err != nil {
		h.logger.Error("LIVE_FEED", "Failed to encode feed event", map[string]interface{}{"error": err.Error(), "type": eventType})
		return
	}

	h.deliver(payload)

	if h.rdb != nil {
		relay, _ := json.Marshal(clusterMessage{Origin: h.instanceID, Message: payload})
		if err := h.rdb.Publish(context.Background(), clusterChannel, relay).Err(); err != nil {
			h.logger.Warn("LIVE_FEED", "Failed to relay feed event", map[string]interface{}{"error": err.Error()})
		}
	}
}

// deliver drops clients whose buffer is full instead of blocking the publisher.
func (h *Hub) deliver(payload []byte) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("LIVE_FEED", "Send buffer full, dropping client", map[string]interface{}{"user_id": client.UserID})
		h.remove(client)
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var relay clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &relay); err != nil {
				h.logger.Warn("LIVE_FEED", "Malformed cluster message", map[string]interface{}{"error": err.Error()})
				continue
			}
			if relay.Origin == h.instanceID {
				continue
			}
			h.deliver(relay.Message)
		}
	}
}
