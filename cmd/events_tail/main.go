package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"roofing-site-be/internal/config"
	"roofing-site-be/pkg/events"
	pktNats "roofing-site-be/pkg/nats"

	"github.com/fatih/color"
)

// Prints domain events from the stream as they arrive. Useful when wiring
// downstream consumers of CONTACT_SUBMITTED and friends.
func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		color.Red("NATS_URL is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	subject := pktNats.SubjectPrefix + ".>"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	err = sub.Subscribe(ctx, subject, "", func(_ context.Context, evt events.Event) error {
		payload, _ := json.Marshal(evt.Payload())
		color.Yellow("[%s] %s", evt.Timestamp().Format("15:04:05"), evt.EventType())
		color.White("  %s", payload)
		return nil
	})
	if err != nil {
		color.Red("Subscribe failed: %v", err)
		os.Exit(1)
	}

	color.Cyan("👀 Tailing %s (Ctrl+C to stop)\n", subject)
	<-ctx.Done()
}
