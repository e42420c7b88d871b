package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "brandbridge/contexts/asset-distribution/engagement-ledger/application"
	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

type RecordDownloadCommand struct {
	FileID      string
	BrandID     string
	SourceType  string
	SourceTitle string
	Actor       string
}

type RecordDownloadUseCase struct {
	Ledger    ports.Ledger
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

// Execute folds one download into the ledger. Downloads of deleted sources are
// refused and leave the entry untouched.
func (u RecordDownloadUseCase) Execute(ctx context.Context, cmd RecordDownloadCommand) (entities.DownloadLogEntry, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := ctx.Err(); err != nil {
		return entities.DownloadLogEntry{}, err
	}
	req := entities.DownloadRequest{
		FileID:      strings.TrimSpace(cmd.FileID),
		BrandID:     strings.TrimSpace(cmd.BrandID),
		SourceType:  entities.SourceType(strings.ToLower(strings.TrimSpace(cmd.SourceType))),
		SourceTitle: strings.TrimSpace(cmd.SourceTitle),
		Actor:       strings.TrimSpace(cmd.Actor),
	}

	now := u.Clock.Now().UTC()
	entry, err := u.Ledger.Record(ctx, req, now)
	if err != nil {
		logger.Warn("download refused",
			"event", "engagement_ledger_download_refused",
			"module", "asset-distribution/engagement-ledger",
			"layer", "application",
			"file_id", req.FileID,
			"error", err.Error(),
		)
		return entities.DownloadLogEntry{}, err
	}

	latest, _ := entry.LatestLog()
	publishDownloadEvent(ctx, logger, u.Publisher, u.IDGen,
		"download."+string(latest.Status),
		entry.FileID,
		now,
		downloadNotification(entry, latest.Status),
		map[string]any{
			"entry_id":           entry.EntryID,
			"file_id":            entry.FileID,
			"brand_id":           entry.BrandID,
			"actor":              entry.DownloadedBy,
			"frequency":          entry.Frequency,
			"version_downloaded": entry.VersionDownloaded,
		},
	)

	logger.Info("download recorded",
		"event", "engagement_ledger_download_recorded",
		"module", "asset-distribution/engagement-ledger",
		"layer", "application",
		"file_id", entry.FileID,
		"entry_id", entry.EntryID,
		"log_status", string(latest.Status),
		"frequency", entry.Frequency,
		"version", entry.VersionDownloaded,
	)
	return entry, nil
}

func downloadNotification(entry entities.DownloadLogEntry, status entities.LogStatus) contractsv1.Notification {
	title := entry.SourceTitle
	if title == "" {
		title = entry.FileID
	}
	switch status {
	case entities.LogStatusUpdated:
		return contractsv1.Notification{
			Message: fmt.Sprintf("Downloaded latest version of %s (%s)", title, entry.VersionDownloaded),
			Kind:    contractsv1.NotificationSuccess,
		}
	case entities.LogStatusRedownloaded:
		return contractsv1.Notification{
			Message: fmt.Sprintf("Downloaded %s again", title),
			Kind:    contractsv1.NotificationSuccess,
		}
	default:
		return contractsv1.Notification{
			Message: fmt.Sprintf("Downloaded %s", title),
			Kind:    contractsv1.NotificationSuccess,
		}
	}
}
