package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"brandbridge/contexts/campaign-editorial/submission-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

func newTaskEnvelope(
	eventID string,
	eventType string,
	taskID string,
	occurredAt time.Time,
	notification contractsv1.Notification,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "submission-service",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "task_id",
		PartitionKey:     taskID,
		Notification:     notification,
		Data:             payload,
	}, nil
}

// publishTaskEvent hands the envelope to the bus. The state change is already
// saved, so a failed publish is logged and never reported to the caller.
func publishTaskEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher ports.EventPublisher,
	idGen ports.IDGenerator,
	eventType string,
	taskID string,
	occurredAt time.Time,
	notification contractsv1.Notification,
	data map[string]any,
) {
	if publisher == nil {
		return
	}
	err := func() error {
		eventID, err := idGen.NewID(ctx)
		if err != nil {
			return err
		}
		envelope, err := newTaskEnvelope(eventID, eventType, taskID, occurredAt, notification, data)
		if err != nil {
			return err
		}
		return publisher.Publish(ctx, contractsv1.TopicNotifications, envelope)
	}()
	if err != nil {
		logger.Error("event publish failed",
			"event", "submission_event_publish_failed",
			"module", "campaign-editorial/submission-service",
			"layer", "application",
			"event_type", eventType,
			"task_id", taskID,
			"error", err.Error(),
		)
	}
}
