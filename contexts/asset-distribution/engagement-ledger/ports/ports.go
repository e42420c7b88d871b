package ports

import (
	"context"
	"time"

	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	contractsv1 "brandbridge/contracts/events/v1"
)

// EntryFilter narrows ledger reads. Empty fields match everything.
type EntryFilter struct {
	BrandID    string
	SourceType entities.SourceType
}

// Ledger owns the download entries. It keeps at most one entry per file and
// returns entries most-recently-touched first.
type Ledger interface {
	// Record upserts the entry for req.FileID and moves it to the head.
	Record(ctx context.Context, req entities.DownloadRequest, now time.Time) (entities.DownloadLogEntry, error)
	GetEntry(ctx context.Context, fileID string) (entities.DownloadLogEntry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]entities.DownloadLogEntry, error)
	// CanRecord is false only for entries whose source was deleted.
	CanRecord(ctx context.Context, fileID string) (bool, error)
	MarkFreshness(ctx context.Context, fileID string, status entities.VersionStatus) (entities.DownloadLogEntry, bool, error)
}

// FileRegistry resolves asset metadata. found is false for unknown or removed
// files.
type FileRegistry interface {
	GetFile(ctx context.Context, fileID string) (entities.FileMetadata, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
