package memory

import (
	"container/list"
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	application "brandbridge/contexts/asset-distribution/engagement-ledger/application"
	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	domainerrors "brandbridge/contexts/asset-distribution/engagement-ledger/domain/errors"
	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"

	"github.com/google/uuid"
)

// Ledger keeps entries in a map keyed by file id for upserts and a list that
// holds them most-recently-touched first.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]*list.Element
	order   *list.List
	logger  *slog.Logger
}

// NewLedger loads seed entries in the given order. Duplicate file ids are
// reported and merged into the first occurrence.
func NewLedger(seed []entities.DownloadLogEntry, logger *slog.Logger) *Ledger {
	l := &Ledger{
		entries: make(map[string]*list.Element, len(seed)),
		order:   list.New(),
		logger:  application.ResolveLogger(logger),
	}
	for _, item := range seed {
		item = cloneEntry(item)
		item.FileID = strings.TrimSpace(item.FileID)
		element, exists := l.entries[item.FileID]
		if !exists {
			l.entries[item.FileID] = l.order.PushBack(item)
			continue
		}

		existing := element.Value.(entities.DownloadLogEntry)
		l.logger.Error("duplicate ledger entry merged",
			"event", "engagement_ledger_duplicate_merged",
			"module", "asset-distribution/engagement-ledger",
			"layer", "adapter",
			"file_id", item.FileID,
			"kept_entry_id", existing.EntryID,
			"dropped_entry_id", item.EntryID,
			"error", domainerrors.ErrDuplicateFileID.Error(),
		)
		merged, err := entities.Merge(existing, item)
		if err != nil {
			continue
		}
		element.Value = merged
	}
	return l
}

func (l *Ledger) Record(_ context.Context, req entities.DownloadRequest, now time.Time) (entities.DownloadLogEntry, error) {
	if err := req.Validate(); err != nil {
		return entities.DownloadLogEntry{}, err
	}
	fileID := strings.TrimSpace(req.FileID)

	l.mu.Lock()
	defer l.mu.Unlock()

	element, exists := l.entries[fileID]
	if !exists {
		entry := entities.NewEntry(uuid.NewString(), req, now)
		l.entries[fileID] = l.order.PushFront(entry)
		return cloneEntry(entry), nil
	}

	entry, err := element.Value.(entities.DownloadLogEntry).Redownload(req.Actor, now)
	if err != nil {
		return entities.DownloadLogEntry{}, err
	}
	element.Value = entry
	l.order.MoveToFront(element)
	return cloneEntry(entry), nil
}

func (l *Ledger) GetEntry(_ context.Context, fileID string) (entities.DownloadLogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	element, exists := l.entries[strings.TrimSpace(fileID)]
	if !exists {
		return entities.DownloadLogEntry{}, domainerrors.ErrEntryNotFound
	}
	return cloneEntry(element.Value.(entities.DownloadLogEntry)), nil
}

func (l *Ledger) ListEntries(_ context.Context, filter ports.EntryFilter) ([]entities.DownloadLogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	brandID := strings.TrimSpace(filter.BrandID)
	items := make([]entities.DownloadLogEntry, 0, l.order.Len())
	for element := l.order.Front(); element != nil; element = element.Next() {
		entry := element.Value.(entities.DownloadLogEntry)
		if brandID != "" && entry.BrandID != brandID {
			continue
		}
		if filter.SourceType != "" && entry.SourceType != filter.SourceType {
			continue
		}
		items = append(items, cloneEntry(entry))
	}
	return items, nil
}

// CanRecord reports whether a download may be recorded. Files never seen
// before can always be recorded.
func (l *Ledger) CanRecord(_ context.Context, fileID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	element, exists := l.entries[strings.TrimSpace(fileID)]
	if !exists {
		return true, nil
	}
	return element.Value.(entities.DownloadLogEntry).CanRecord(), nil
}

// MarkFreshness changes the freshness status without touching the order.
func (l *Ledger) MarkFreshness(
	_ context.Context,
	fileID string,
	status entities.VersionStatus,
) (entities.DownloadLogEntry, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	element, exists := l.entries[strings.TrimSpace(fileID)]
	if !exists {
		return entities.DownloadLogEntry{}, false, domainerrors.ErrEntryNotFound
	}
	entry, changed, err := element.Value.(entities.DownloadLogEntry).MarkFreshness(status)
	if err != nil {
		return entities.DownloadLogEntry{}, false, err
	}
	element.Value = entry
	return cloneEntry(entry), changed, nil
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.order.Len()
}

func cloneEntry(e entities.DownloadLogEntry) entities.DownloadLogEntry {
	e.Logs = append([]entities.LogEvent(nil), e.Logs...)
	return e
}

func (l *Ledger) Now() time.Time {
	return time.Now().UTC()
}

func (l *Ledger) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
