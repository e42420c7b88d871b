package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	application "brandbridge/contexts/asset-distribution/engagement-ledger/application"
	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	domainerrors "brandbridge/contexts/asset-distribution/engagement-ledger/domain/errors"
	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"
)

// DownloadView is a ledger entry joined with the file it points at.
type DownloadView struct {
	Entry        entities.DownloadLogEntry
	File         entities.FileMetadata
	FileResolved bool
	CanRecord    bool
}

type ListDownloadsQuery struct {
	BrandID    string
	SourceType string
}

type ListDownloadsUseCase struct {
	Ledger ports.Ledger
	Files  ports.FileRegistry
	Logger *slog.Logger
}

// Execute returns entries newest download first. Entries with equal download
// times keep their ledger order. Files the registry cannot resolve are still
// listed with placeholder metadata.
func (u ListDownloadsUseCase) Execute(ctx context.Context, query ListDownloadsQuery) ([]DownloadView, error) {
	filter := ports.EntryFilter{BrandID: strings.TrimSpace(query.BrandID)}
	if value := strings.TrimSpace(query.SourceType); value != "" {
		filter.SourceType = entities.SourceType(strings.ToLower(value))
		if !entities.IsSupportedSourceType(filter.SourceType) {
			return nil, domainerrors.ErrInvalidListFilter
		}
	}

	entries, err := u.Ledger.ListEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DownloadedAt.After(entries[j].DownloadedAt)
	})

	items := make([]DownloadView, 0, len(entries))
	for _, entry := range entries {
		items = append(items, joinFile(ctx, u.Files, u.Logger, entry))
	}
	return items, nil
}

type GetDownloadUseCase struct {
	Ledger ports.Ledger
	Files  ports.FileRegistry
	Logger *slog.Logger
}

func (u GetDownloadUseCase) Execute(ctx context.Context, fileID string) (DownloadView, error) {
	entry, err := u.Ledger.GetEntry(ctx, strings.TrimSpace(fileID))
	if err != nil {
		return DownloadView{}, err
	}
	return joinFile(ctx, u.Files, u.Logger, entry), nil
}

type CanRecordUseCase struct {
	Ledger ports.Ledger
}

func (u CanRecordUseCase) Execute(ctx context.Context, fileID string) (bool, error) {
	return u.Ledger.CanRecord(ctx, strings.TrimSpace(fileID))
}

func joinFile(
	ctx context.Context,
	files ports.FileRegistry,
	logger *slog.Logger,
	entry entities.DownloadLogEntry,
) DownloadView {
	view := DownloadView{
		Entry:     entry,
		File:      entities.UnknownFile(entry.FileID),
		CanRecord: entry.CanRecord(),
	}
	if files == nil {
		return view
	}
	file, found, err := files.GetFile(ctx, entry.FileID)
	if err != nil {
		application.ResolveLogger(logger).Warn("file lookup failed",
			"event", "engagement_ledger_file_lookup_failed",
			"module", "asset-distribution/engagement-ledger",
			"layer", "application",
			"file_id", entry.FileID,
			"error", err.Error(),
		)
		return view
	}
	if found {
		view.File = file
		view.FileResolved = true
	}
	return view
}
