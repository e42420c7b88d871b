package v1

import (
	"encoding/json"
	"time"
)

// TopicNotifications carries every user-facing result of a state transition.
const TopicNotifications = "ui.notifications"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
	NotificationError   NotificationKind = "error"
)

// Notification is the human-readable outcome shown to the user as a toast.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Envelope is the versioned event shape shared by every service. It must stay
// backward compatible.
type Envelope struct {
	EventID          string          `json:"event_id"`
	EventType        string          `json:"event_type"`
	OccurredAt       time.Time       `json:"occurred_at"`
	SourceService    string          `json:"source_service"`
	TraceID          string          `json:"trace_id"`
	SchemaVersion    int             `json:"schema_version"`
	PartitionKeyPath string          `json:"partition_key_path"`
	PartitionKey     string          `json:"partition_key"`
	Notification     Notification    `json:"notification"`
	Data             json.RawMessage `json:"data"`
}
