package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

func newDownloadEnvelope(
	eventID string,
	eventType string,
	fileID string,
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
		SourceService:    "engagement-ledger",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "file_id",
		PartitionKey:     fileID,
		Notification:     notification,
		Data:             payload,
	}, nil
}

// publishDownloadEvent hands the envelope to the bus. The state change is already
// saved, so a failed publish is logged and never reported to the caller.
func publishDownloadEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher ports.EventPublisher,
	idGen ports.IDGenerator,
	eventType string,
	fileID string,
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
		envelope, err := newDownloadEnvelope(eventID, eventType, fileID, occurredAt, notification, data)
		if err != nil {
			return err
		}
		return publisher.Publish(ctx, contractsv1.TopicNotifications, envelope)
	}()
	if err != nil {
		logger.Error("event publish failed",
			"event", "engagement_ledger_event_publish_failed",
			"module", "asset-distribution/engagement-ledger",
			"layer", "application",
			"event_type", eventType,
			"file_id", fileID,
			"error", err.Error(),
		)
	}
}
