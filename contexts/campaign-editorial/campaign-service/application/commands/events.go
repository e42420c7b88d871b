package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

func newCampaignEnvelope(
	eventID string,
	eventType string,
	campaignID string,
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
		SourceService:    "campaign-service",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "campaign_id",
		PartitionKey:     campaignID,
		Notification:     notification,
		Data:             payload,
	}, nil
}

// publishCampaignEvent hands the envelope to the bus. The state change is already
// saved, so a failed publish is logged and never reported to the caller.
func publishCampaignEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher ports.EventPublisher,
	idGen ports.IDGenerator,
	eventType string,
	campaignID string,
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
		envelope, err := newCampaignEnvelope(eventID, eventType, campaignID, occurredAt, notification, data)
		if err != nil {
			return err
		}
		return publisher.Publish(ctx, contractsv1.TopicNotifications, envelope)
	}()
	if err != nil {
		logger.Error("event publish failed",
			"event", "campaign_event_publish_failed",
			"module", "campaign-editorial/campaign-service",
			"layer", "application",
			"event_type", eventType,
			"campaign_id", campaignID,
			"error", err.Error(),
		)
	}
}
