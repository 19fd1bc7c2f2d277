package redis

import (
	"context"
	"encoding/json"
	"time"

	"civicAid/internal/domain"

	"github.com/redis/go-redis/v9"
)

// EventPublisher broadcasts refresh events to live clients over a pub/sub
// channel. The assignment engine never publishes; its callers do, after they
// have the result in hand.
type EventPublisher struct {
	client  *redis.Client
	channel string
}

func NewEventPublisher(client *redis.Client, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.BroadcastEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, b).Err()
}
