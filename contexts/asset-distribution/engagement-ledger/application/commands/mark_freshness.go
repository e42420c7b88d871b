package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandbridge/contexts/asset-distribution/engagement-ledger/application"
	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

// MarkFreshnessUseCase applies brand-side changes to a downloaded file: a new
// version was published, or the source was removed.
type MarkFreshnessUseCase struct {
	Ledger    ports.Ledger
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (u MarkFreshnessUseCase) MarkUpdateAvailable(ctx context.Context, fileID string) (entities.DownloadLogEntry, error) {
	return u.mark(ctx, fileID, entities.VersionStatusUpdateAvailable)
}

func (u MarkFreshnessUseCase) MarkSourceDeleted(ctx context.Context, fileID string) (entities.DownloadLogEntry, error) {
	return u.mark(ctx, fileID, entities.VersionStatusSourceDeleted)
}

func (u MarkFreshnessUseCase) mark(
	ctx context.Context,
	fileID string,
	status entities.VersionStatus,
) (entities.DownloadLogEntry, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := ctx.Err(); err != nil {
		return entities.DownloadLogEntry{}, err
	}
	entry, changed, err := u.Ledger.MarkFreshness(ctx, strings.TrimSpace(fileID), status)
	if err != nil {
		return entities.DownloadLogEntry{}, err
	}
	if !changed {
		return entry, nil
	}

	message := "A new version of " + entry.SourceTitle + " is available"
	if status == entities.VersionStatusSourceDeleted {
		message = entry.SourceTitle + " was removed by the brand"
	}
	publishDownloadEvent(ctx, logger, u.Publisher, u.IDGen,
		"download.freshness_changed",
		entry.FileID,
		u.Clock.Now().UTC(),
		contractsv1.Notification{Message: message, Kind: contractsv1.NotificationInfo},
		map[string]any{
			"file_id":                entry.FileID,
			"current_version_status": string(entry.CurrentVersionStatus),
		},
	)

	logger.Info("download freshness changed",
		"event", "engagement_ledger_freshness_changed",
		"module", "asset-distribution/engagement-ledger",
		"layer", "application",
		"file_id", entry.FileID,
		"status", string(entry.CurrentVersionStatus),
	)
	return entry, nil
}
