package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	contractsv1 "brandbridge/contracts/events/v1"
)

// Sink shows a notification to the user. It is fire-and-forget.
type Sink interface {
	Notify(message string, kind contractsv1.NotificationKind)
}

// Subscriber is the part of the message bus the dispatcher needs.
type Subscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, contractsv1.Envelope) error,
	) error
}

// LogSink writes notifications as structured log lines.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Notify(message string, kind contractsv1.NotificationKind) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if kind == contractsv1.NotificationError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, message,
		"event", "notification",
		"module", "internal/platform/notify",
		"layer", "platform",
		"kind", string(kind),
	)
}

// Notification is one delivered message.
type Notification struct {
	Message string
	Kind    contractsv1.NotificationKind
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(message string, kind contractsv1.NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Message: message, Kind: kind})
}

// Drain returns the recorded notifications and forgets them.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items
	r.items = nil
	return items
}

// Fanout delivers to every sink in order.
type Fanout []Sink

func (f Fanout) Notify(message string, kind contractsv1.NotificationKind) {
	for _, sink := range f {
		sink.Notify(message, kind)
	}
}

// Dispatcher forwards notification envelopes from the bus to a sink.
type Dispatcher struct {
	Sink   Sink
	Logger *slog.Logger
}

// Start subscribes to the notifications topic until ctx is done.
func (d Dispatcher) Start(ctx context.Context, bus Subscriber) error {
	return bus.Subscribe(ctx, contractsv1.TopicNotifications, "notify-dispatcher", d.Handle)
}

// Handle delivers one envelope. Envelopes without a message are skipped.
func (d Dispatcher) Handle(_ context.Context, event contractsv1.Envelope) error {
	message := strings.TrimSpace(event.Notification.Message)
	if message == "" || d.Sink == nil {
		return nil
	}
	kind := event.Notification.Kind
	switch kind {
	case contractsv1.NotificationSuccess, contractsv1.NotificationInfo, contractsv1.NotificationError:
	default:
		kind = contractsv1.NotificationInfo
	}
	d.Sink.Notify(message, kind)
	if d.Logger != nil {
		d.Logger.Debug("notification dispatched",
			"event", "notification_dispatched",
			"module", "internal/platform/notify",
			"layer", "platform",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"source_service", event.SourceService,
		)
	}
	return nil
}
