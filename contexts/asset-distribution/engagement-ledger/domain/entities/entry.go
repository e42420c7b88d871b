package entities

import (
	"sort"
	"strings"
	"time"

	domainerrors "brandbridge/contexts/asset-distribution/engagement-ledger/domain/errors"
)

type SourceType string

const (
	SourceTypeCampaign SourceType = "campaign"
	SourceTypeResource SourceType = "resource"
)

func IsSupportedSourceType(value SourceType) bool {
	return value == SourceTypeCampaign || value == SourceTypeResource
}

type LogStatus string

const (
	LogStatusDownloaded   LogStatus = "downloaded"
	LogStatusRedownloaded LogStatus = "redownloaded"
	LogStatusUpdated      LogStatus = "updated"
)

// LogEvent is one download folded into an entry.
type LogEvent struct {
	UserName string
	Date     time.Time
	Status   LogStatus
}

// DownloadRequest is a single download as reported by the dashboard.
type DownloadRequest struct {
	FileID      string
	BrandID     string
	SourceType  SourceType
	SourceTitle string
	Actor       string
}

func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.FileID) == "" ||
		strings.TrimSpace(r.Actor) == "" ||
		!IsSupportedSourceType(r.SourceType) {
		return domainerrors.ErrInvalidDownloadInput
	}
	return nil
}

// DownloadLogEntry aggregates every download of one file. Logs run oldest to
// newest.
type DownloadLogEntry struct {
	EntryID              string
	FileID               string
	BrandID              string
	SourceType           SourceType
	SourceTitle          string
	DownloadedAt         time.Time
	DownloadedBy         string
	VersionDownloaded    string
	CurrentVersionStatus VersionStatus
	Frequency            int
	Logs                 []LogEvent
}

// NewEntry opens a ledger entry for the first download of a file.
func NewEntry(entryID string, req DownloadRequest, now time.Time) DownloadLogEntry {
	now = now.UTC()
	actor := strings.TrimSpace(req.Actor)
	entry := DownloadLogEntry{
		EntryID:              entryID,
		FileID:               strings.TrimSpace(req.FileID),
		BrandID:              strings.TrimSpace(req.BrandID),
		SourceType:           req.SourceType,
		SourceTitle:          strings.TrimSpace(req.SourceTitle),
		DownloadedAt:         now,
		DownloadedBy:         actor,
		VersionDownloaded:    InitialVersion,
		CurrentVersionStatus: VersionStatusLatest,
		Frequency:            1,
	}
	entry.Logs = []LogEvent{{UserName: actor, Date: now, Status: deriveLogStatus(entry, false)}}
	return entry
}

func (e DownloadLogEntry) CanRecord() bool {
	return e.CurrentVersionStatus != VersionStatusSourceDeleted
}

// LatestLog returns the newest log event.
func (e DownloadLogEntry) LatestLog() (LogEvent, bool) {
	if len(e.Logs) == 0 {
		return LogEvent{}, false
	}
	return e.Logs[len(e.Logs)-1], true
}

// Redownload folds another download into the entry. A pending update is
// picked up, which bumps the version. The receiver is left untouched.
func (e DownloadLogEntry) Redownload(actor string, now time.Time) (DownloadLogEntry, error) {
	if !e.CanRecord() {
		return DownloadLogEntry{}, domainerrors.ErrSourceDeleted
	}
	now = now.UTC()
	actor = strings.TrimSpace(actor)

	updated := e
	updated.Logs = append([]LogEvent(nil), e.Logs...)
	updated.DownloadedAt = now
	updated.DownloadedBy = actor
	updated.Frequency++

	pickedUpUpdate := false
	if e.CurrentVersionStatus == VersionStatusUpdateAvailable {
		updated.CurrentVersionStatus = VersionStatusLatest
		updated.VersionDownloaded = NextVersion(e.VersionDownloaded)
		pickedUpUpdate = true
	}
	updated.Logs = append(updated.Logs, LogEvent{
		UserName: actor,
		Date:     now,
		Status:   deriveLogStatus(updated, pickedUpUpdate),
	})
	return updated, nil
}

func deriveLogStatus(entry DownloadLogEntry, pickedUpUpdate bool) LogStatus {
	switch {
	case entry.Frequency <= 1:
		return LogStatusDownloaded
	case pickedUpUpdate:
		return LogStatusUpdated
	default:
		return LogStatusRedownloaded
	}
}

// Merge folds two entries of the same file into one. Frequencies add up, logs
// are interleaved by date and the most recent download provides the headline
// fields. A deleted source stays deleted.
func Merge(a DownloadLogEntry, b DownloadLogEntry) (DownloadLogEntry, error) {
	if a.FileID != b.FileID {
		return DownloadLogEntry{}, domainerrors.ErrMergeFileMismatch
	}
	recent, older := a, b
	if b.DownloadedAt.After(a.DownloadedAt) {
		recent, older = b, a
	}

	merged := recent
	merged.EntryID = a.EntryID
	merged.Frequency = a.Frequency + b.Frequency
	merged.Logs = make([]LogEvent, 0, len(a.Logs)+len(b.Logs))
	merged.Logs = append(merged.Logs, a.Logs...)
	merged.Logs = append(merged.Logs, b.Logs...)
	sort.SliceStable(merged.Logs, func(i, j int) bool {
		return merged.Logs[i].Date.Before(merged.Logs[j].Date)
	})
	if older.CurrentVersionStatus == VersionStatusSourceDeleted {
		merged.CurrentVersionStatus = VersionStatusSourceDeleted
	}
	return merged, nil
}
