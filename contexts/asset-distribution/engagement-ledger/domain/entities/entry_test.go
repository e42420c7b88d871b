package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "brandbridge/contexts/asset-distribution/engagement-ledger/domain/errors"
)

var t1 = time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)

func request(actor string) DownloadRequest {
	return DownloadRequest{
		FileID:      "f1",
		BrandID:     "b1",
		SourceType:  SourceTypeCampaign,
		SourceTitle: "Holiday Window",
		Actor:       actor,
	}
}

func TestNextVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "v1.0", want: "v1.1"},
		{in: "v1.9", want: "v1.10"},
		{in: "v1.10", want: "v1.11"},
		{in: "v2.3", want: "v2.4"},
		{in: "1.4", want: "v1.5"},
		{in: "v3", want: "v3.1"},
		{in: "v1.2.7", want: "v1.3"},
		{in: "", want: "v1.1"},
		{in: "latest", want: "v1.1"},
		{in: "v1.x", want: "v1.1"},
	}
	for _, tc := range tests {
		if got := NextVersion(tc.in); got != tc.want {
			t.Fatalf("NextVersion(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("e1", request("Alice"), t1)
	if entry.Frequency != 1 || entry.VersionDownloaded != InitialVersion || entry.CurrentVersionStatus != VersionStatusLatest {
		t.Fatalf("unexpected new entry: %+v", entry)
	}
	if len(entry.Logs) != 1 || entry.Logs[0].Status != LogStatusDownloaded || entry.Logs[0].UserName != "Alice" {
		t.Fatalf("unexpected first log: %+v", entry.Logs)
	}
}

func TestRedownloadStatuses(t *testing.T) {
	entry := NewEntry("e1", request("Alice"), t1)

	again, err := entry.Redownload("Bob", t1.Add(time.Hour))
	if err != nil {
		t.Fatalf("redownload failed: %v", err)
	}
	if again.Frequency != 2 || again.DownloadedBy != "Bob" || !again.DownloadedAt.Equal(t1.Add(time.Hour)) {
		t.Fatalf("unexpected redownload: %+v", again)
	}
	if latest, _ := again.LatestLog(); latest.Status != LogStatusRedownloaded {
		t.Fatalf("expected redownloaded, got %s", latest.Status)
	}
	if len(entry.Logs) != 1 {
		t.Fatalf("receiver logs mutated")
	}

	stale, _, err := again.MarkFreshness(VersionStatusUpdateAvailable)
	if err != nil {
		t.Fatalf("mark update failed: %v", err)
	}
	updated, err := stale.Redownload("Carol", t1.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("redownload failed: %v", err)
	}
	if updated.VersionDownloaded != "v1.1" || updated.CurrentVersionStatus != VersionStatusLatest {
		t.Fatalf("expected v1.1 latest, got %s %s", updated.VersionDownloaded, updated.CurrentVersionStatus)
	}
	if latest, _ := updated.LatestLog(); latest.Status != LogStatusUpdated {
		t.Fatalf("expected updated, got %s", latest.Status)
	}
}

func TestSourceDeletedIsTerminal(t *testing.T) {
	entry := NewEntry("e1", request("Alice"), t1)
	deleted, changed, err := entry.MarkFreshness(VersionStatusSourceDeleted)
	if err != nil || !changed {
		t.Fatalf("expected deletion to apply, got changed=%v err=%v", changed, err)
	}
	if deleted.CanRecord() {
		t.Fatalf("expected deleted entry to refuse downloads")
	}
	if _, err := deleted.Redownload("Bob", t1.Add(time.Hour)); !errors.Is(err, domainerrors.ErrSourceDeleted) {
		t.Fatalf("expected source deleted, got %v", err)
	}
	if _, _, err := deleted.MarkFreshness(VersionStatusUpdateAvailable); !errors.Is(err, domainerrors.ErrSourceDeleted) {
		t.Fatalf("expected source deleted, got %v", err)
	}
	if _, changed, err := deleted.MarkFreshness(VersionStatusSourceDeleted); err != nil || changed {
		t.Fatalf("expected repeated deletion to be a no-op, got changed=%v err=%v", changed, err)
	}
	if _, _, err := entry.MarkFreshness(VersionStatusLatest); !errors.Is(err, domainerrors.ErrInvalidFreshnessTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	a := NewEntry("e1", request("Alice"), t1)
	b := NewEntry("e2", request("Bob"), t1.Add(-time.Hour))
	b, _ = b.Redownload("Bob", t1.Add(2*time.Hour))

	merged, err := Merge(a, b)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged.EntryID != "e1" || merged.Frequency != 3 || merged.DownloadedBy != "Bob" {
		t.Fatalf("unexpected merge: %+v", merged)
	}
	for i := 1; i < len(merged.Logs); i++ {
		if merged.Logs[i].Date.Before(merged.Logs[i-1].Date) {
			t.Fatalf("logs not ordered by date: %+v", merged.Logs)
		}
	}

	other := NewEntry("e3", DownloadRequest{FileID: "f2", SourceType: SourceTypeResource, Actor: "Dan"}, t1)
	if _, err := Merge(a, other); !errors.Is(err, domainerrors.ErrInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
}

func TestDownloadRequestValidate(t *testing.T) {
	if err := request("Alice").Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := request("")
	if err := bad.Validate(); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	bad = request("Alice")
	bad.SourceType = "template"
	if err := bad.Validate(); !errors.Is(err, domainerrors.ErrInvalidDownloadInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
