package uiadapter

import (
	"context"
	"log/slog"
	"time"

	"brandbridge/contexts/asset-distribution/engagement-ledger/application/commands"
	"brandbridge/contexts/asset-distribution/engagement-ledger/application/queries"
	viewtransport "brandbridge/contexts/asset-distribution/engagement-ledger/transport/view"
)

type Handler struct {
	RecordDownload commands.RecordDownloadUseCase
	MarkFreshness  commands.MarkFreshnessUseCase
	ListDownloads  queries.ListDownloadsUseCase
	GetDownload    queries.GetDownloadUseCase
	CanRecord      queries.CanRecordUseCase
	Logger         *slog.Logger
}

func (h Handler) RecordDownloadHandler(
	ctx context.Context,
	actor string,
	req viewtransport.RecordDownloadRequest,
) (viewtransport.DownloadResponse, error) {
	entry, err := h.RecordDownload.Execute(ctx, commands.RecordDownloadCommand{
		FileID:      req.FileID,
		BrandID:     req.BrandID,
		SourceType:  req.SourceType,
		SourceTitle: req.SourceTitle,
		Actor:       actor,
	})
	if err != nil {
		return viewtransport.DownloadResponse{}, err
	}
	return h.GetDownloadHandler(ctx, entry.FileID)
}

func (h Handler) GetDownloadHandler(ctx context.Context, fileID string) (viewtransport.DownloadResponse, error) {
	item, err := h.GetDownload.Execute(ctx, fileID)
	if err != nil {
		return viewtransport.DownloadResponse{}, err
	}
	return viewtransport.DownloadResponse{Download: mapDownload(item)}, nil
}

func (h Handler) ListDownloadsHandler(
	ctx context.Context,
	brandID string,
	sourceType string,
) (viewtransport.ListDownloadsResponse, error) {
	items, err := h.ListDownloads.Execute(ctx, queries.ListDownloadsQuery{
		BrandID:    brandID,
		SourceType: sourceType,
	})
	if err != nil {
		return viewtransport.ListDownloadsResponse{}, err
	}
	result := make([]viewtransport.DownloadDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapDownload(item))
	}
	return viewtransport.ListDownloadsResponse{Items: result}, nil
}

func (h Handler) CanRecordHandler(ctx context.Context, fileID string) (viewtransport.CanRecordResponse, error) {
	allowed, err := h.CanRecord.Execute(ctx, fileID)
	if err != nil {
		return viewtransport.CanRecordResponse{}, err
	}
	return viewtransport.CanRecordResponse{FileID: fileID, CanRecord: allowed}, nil
}

func (h Handler) MarkUpdateAvailableHandler(ctx context.Context, fileID string) (viewtransport.DownloadResponse, error) {
	if _, err := h.MarkFreshness.MarkUpdateAvailable(ctx, fileID); err != nil {
		return viewtransport.DownloadResponse{}, err
	}
	return h.GetDownloadHandler(ctx, fileID)
}

func (h Handler) MarkSourceDeletedHandler(ctx context.Context, fileID string) (viewtransport.DownloadResponse, error) {
	if _, err := h.MarkFreshness.MarkSourceDeleted(ctx, fileID); err != nil {
		return viewtransport.DownloadResponse{}, err
	}
	return h.GetDownloadHandler(ctx, fileID)
}

func mapDownload(item queries.DownloadView) viewtransport.DownloadDTO {
	entry := item.Entry
	logs := make([]viewtransport.LogEventDTO, 0, len(entry.Logs))
	for _, event := range entry.Logs {
		logs = append(logs, viewtransport.LogEventDTO{
			UserName: event.UserName,
			Date:     event.Date.UTC().Format(time.RFC3339),
			Status:   string(event.Status),
		})
	}
	return viewtransport.DownloadDTO{
		EntryID:              entry.EntryID,
		FileID:               entry.FileID,
		BrandID:              entry.BrandID,
		SourceType:           string(entry.SourceType),
		SourceTitle:          entry.SourceTitle,
		DownloadedAt:         entry.DownloadedAt.UTC().Format(time.RFC3339),
		DownloadedBy:         entry.DownloadedBy,
		VersionDownloaded:    entry.VersionDownloaded,
		CurrentVersionStatus: string(entry.CurrentVersionStatus),
		Frequency:            entry.Frequency,
		CanRecord:            item.CanRecord,
		File: viewtransport.FileDTO{
			Name:      item.File.Name,
			Type:      item.File.Type,
			SizeBytes: item.File.SizeBytes,
			Resolved:  item.FileResolved,
		},
		Logs: logs,
	}
}
