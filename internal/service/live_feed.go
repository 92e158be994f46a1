package service

// Feed event types pushed to the admin dashboard.
const (
	FeedContactSubmitted = "contact_submitted"
	FeedChatStarted      = "chat_started"
	FeedChatMessage      = "chat_message"
)

// LiveFeed pushes events to connected admin dashboards. *websocket.Hub implements it.
type LiveFeed interface {
	Publish(eventType string, data interface{})
	ClientCount() int
}

type noopFeed struct{}

func (noopFeed) Publish(string, interface{}) {}
func (noopFeed) ClientCount() int            { return 0 }

func feedOrNoop(feed LiveFeed) LiveFeed {
	if feed == nil {
		return noopFeed{}
	}
	return feed
}
