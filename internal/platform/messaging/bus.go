package messaging

import (
	"context"
	"log/slog"
	"sync"

	contractsv1 "brandbridge/contracts/events/v1"
)

type subscription struct {
	id            uint64
	consumerGroup string
	handler       func(context.Context, contractsv1.Envelope) error
}

// Bus is an in-process publish/subscribe bus. Publish delivers to every
// subscriber on the caller's goroutine before returning, in subscription
// order. Handler failures are logged and never reach the publisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscription
	nextID      uint64
	logger      *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[string][]subscription),
		logger:      logger,
	}
}

func (b *Bus) Publish(ctx context.Context, topic string, event contractsv1.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	subs := append([]subscription(nil), b.subscribers[topic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.handler(ctx, event); err != nil {
			b.logger.Error("consumer handler failed",
				"event", "bus_consume_failed",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"consumer_group", sub.consumerGroup,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
		}
	}

	b.logger.Debug("event published",
		"event", "bus_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
		"subscribers", len(subs),
	)
	return nil
}

// Subscribe registers handler for topic until ctx is done.
func (b *Bus) Subscribe(
	ctx context.Context,
	topic string,
	consumerGroup string,
	handler func(context.Context, contractsv1.Envelope) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers[topic] = append(b.subscribers[topic], subscription{
		id:            id,
		consumerGroup: consumerGroup,
		handler:       handler,
	})
	b.mu.Unlock()

	context.AfterFunc(ctx, func() {
		b.removeSubscriber(topic, id)
	})
	return nil
}

func (b *Bus) removeSubscriber(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.subscribers[topic]
	if len(items) == 0 {
		return
	}
	filtered := make([]subscription, 0, len(items))
	for _, item := range items {
		if item.id != id {
			filtered = append(filtered, item)
		}
	}
	b.subscribers[topic] = filtered
}
