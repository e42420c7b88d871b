// Package fixture loads a dashboard session snapshot from YAML and converts it
// into seed data for each service.
package fixture

import (
	"fmt"
	"os"
	"strings"
	"time"

	ledgerentities "brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	campaignentities "brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	submissionentities "brandbridge/contexts/campaign-editorial/submission-service/domain/entities"

	"gopkg.in/yaml.v3"
)

// Fixture is one session's worth of seed data. Now pins the clock when set.
type Fixture struct {
	Now       *time.Time `yaml:"now,omitempty"`
	Campaigns []Campaign `yaml:"campaigns"`
	Tasks     []Task     `yaml:"tasks"`
	Files     []File     `yaml:"files"`
	Downloads []Download `yaml:"downloads"`
}

type Campaign struct {
	ID            string          `yaml:"id"`
	BrandID       string          `yaml:"brand_id"`
	Title         string          `yaml:"title"`
	Status        string          `yaml:"status"`
	StartDate     string          `yaml:"start_date"`
	EndDate       string          `yaml:"end_date"`
	Audience      string          `yaml:"audience"`
	CoverImage    string          `yaml:"cover_image"`
	AssetRefs     []string        `yaml:"asset_refs"`
	TemplateRefs  []string        `yaml:"template_refs"`
	Pinned        bool            `yaml:"pinned"`
	UpdatePending bool            `yaml:"update_pending"`
	RetailerUsage map[string]bool `yaml:"retailer_usage,omitempty"`
	CreatedAt     time.Time       `yaml:"created_at"`
	LastUpdatedAt *time.Time      `yaml:"last_updated_at,omitempty"`
}

type Task struct {
	ID          string       `yaml:"id"`
	BrandID     string       `yaml:"brand_id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Priority    string       `yaml:"priority"`
	Deadline    *time.Time   `yaml:"deadline,omitempty"`
	Audience    string       `yaml:"audience"`
	Status      string       `yaml:"status"`
	CreatedAt   time.Time    `yaml:"created_at"`
	Submissions []Submission `yaml:"submissions"`
}

type Submission struct {
	ID              string    `yaml:"id"`
	RetailerID      string    `yaml:"retailer_id"`
	RetailerName    string    `yaml:"retailer_name"`
	Tier            string    `yaml:"tier"`
	Zone            string    `yaml:"zone"`
	SubmittedAt     time.Time `yaml:"submitted_at"`
	Status          string    `yaml:"status"`
	Comment         string    `yaml:"comment"`
	RejectionReason string    `yaml:"rejection_reason"`
}

type File struct {
	ID        string `yaml:"id"`
	BrandID   string `yaml:"brand_id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	SizeBytes int64  `yaml:"size_bytes"`
}

type Download struct {
	ID           string     `yaml:"id"`
	FileID       string     `yaml:"file_id"`
	BrandID      string     `yaml:"brand_id"`
	SourceType   string     `yaml:"source_type"`
	SourceTitle  string     `yaml:"source_title"`
	DownloadedAt time.Time  `yaml:"downloaded_at"`
	DownloadedBy string     `yaml:"downloaded_by"`
	Version      string     `yaml:"version"`
	Status       string     `yaml:"status"`
	Frequency    int        `yaml:"frequency"`
	Logs         []LogEvent `yaml:"logs"`
}

type LogEvent struct {
	User   string    `yaml:"user"`
	Date   time.Time `yaml:"date"`
	Status string    `yaml:"status"`
}

// Load reads and validates a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

// Validate checks the enumerations before any service sees the data.
func (f Fixture) Validate() error {
	for _, c := range f.Campaigns {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("campaign without id")
		}
		if c.Status != "" && !campaignentities.IsSupportedStatus(campaignentities.CampaignStatus(c.Status)) {
			return fmt.Errorf("campaign %s: unknown status %q", c.ID, c.Status)
		}
	}
	for _, t := range f.Tasks {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("task without id")
		}
		if t.Priority != "" && !submissionentities.IsSupportedPriority(submissionentities.TaskPriority(t.Priority)) {
			return fmt.Errorf("task %s: unknown priority %q", t.ID, t.Priority)
		}
		for _, s := range t.Submissions {
			if s.Status != "" && !submissionentities.IsSupportedSubmissionStatus(submissionentities.SubmissionStatus(s.Status)) {
				return fmt.Errorf("task %s submission %s: unknown status %q", t.ID, s.ID, s.Status)
			}
			if s.Status == string(submissionentities.SubmissionStatusRejected) && strings.TrimSpace(s.RejectionReason) == "" {
				return fmt.Errorf("task %s submission %s: rejected without reason", t.ID, s.ID)
			}
		}
	}
	for _, d := range f.Downloads {
		if strings.TrimSpace(d.FileID) == "" {
			return fmt.Errorf("download %s without file id", d.ID)
		}
		if !ledgerentities.IsSupportedSourceType(ledgerentities.SourceType(d.SourceType)) {
			return fmt.Errorf("download %s: unknown source type %q", d.ID, d.SourceType)
		}
		if d.Status != "" && !ledgerentities.IsSupportedVersionStatus(ledgerentities.VersionStatus(d.Status)) {
			return fmt.Errorf("download %s: unknown version status %q", d.ID, d.Status)
		}
	}
	return nil
}

func (f Fixture) CampaignSeed() []campaignentities.Campaign {
	items := make([]campaignentities.Campaign, 0, len(f.Campaigns))
	for _, c := range f.Campaigns {
		status := campaignentities.CampaignStatus(c.Status)
		if status == "" {
			status = campaignentities.CampaignStatusDraft
		}
		items = append(items, campaignentities.Campaign{
			CampaignID:    c.ID,
			BrandID:       c.BrandID,
			Title:         c.Title,
			Status:        status,
			StartDate:     c.StartDate,
			EndDate:       c.EndDate,
			Audience:      c.Audience,
			CoverImage:    c.CoverImage,
			AssetRefs:     c.AssetRefs,
			TemplateRefs:  c.TemplateRefs,
			IsPinned:      c.Pinned,
			UpdatePending: c.UpdatePending,
			RetailerUsage: c.RetailerUsage,
			CreatedAt:     c.CreatedAt.UTC(),
			UpdatedAt:     c.CreatedAt.UTC(),
			LastUpdatedAt: c.LastUpdatedAt,
		})
	}
	return items
}

func (f Fixture) TaskSeed() []submissionentities.Task {
	items := make([]submissionentities.Task, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		task := submissionentities.Task{
			TaskID:      t.ID,
			BrandID:     t.BrandID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    submissionentities.TaskPriority(t.Priority),
			Deadline:    t.Deadline,
			Audience:    t.Audience,
			Status:      submissionentities.TaskStatus(t.Status),
			CreatedAt:   t.CreatedAt.UTC(),
			UpdatedAt:   t.CreatedAt.UTC(),
		}
		if task.Priority == "" {
			task.Priority = submissionentities.TaskPriorityNormal
		}
		if task.Status == "" {
			task.Status = submissionentities.TaskStatusActive
		}
		for _, s := range t.Submissions {
			status := submissionentities.SubmissionStatus(s.Status)
			if status == "" {
				status = submissionentities.SubmissionStatusPending
			}
			task.Submissions = append(task.Submissions, submissionentities.Submission{
				SubmissionID:    s.ID,
				TaskID:          t.ID,
				RetailerID:      s.RetailerID,
				RetailerName:    s.RetailerName,
				Tier:            s.Tier,
				Zone:            s.Zone,
				SubmittedAt:     s.SubmittedAt.UTC(),
				Status:          status,
				Comment:         s.Comment,
				RejectionReason: s.RejectionReason,
			})
		}
		items = append(items, task)
	}
	return items
}

func (f Fixture) FileSeed() []ledgerentities.FileMetadata {
	items := make([]ledgerentities.FileMetadata, 0, len(f.Files))
	for _, file := range f.Files {
		items = append(items, ledgerentities.FileMetadata{
			FileID:    file.ID,
			BrandID:   file.BrandID,
			Name:      file.Name,
			Type:      file.Type,
			SizeBytes: file.SizeBytes,
		})
	}
	return items
}

// DownloadSeed keeps the fixture order, which is the ledger's most recent
// first order.
func (f Fixture) DownloadSeed() []ledgerentities.DownloadLogEntry {
	items := make([]ledgerentities.DownloadLogEntry, 0, len(f.Downloads))
	for _, d := range f.Downloads {
		entry := ledgerentities.DownloadLogEntry{
			EntryID:              d.ID,
			FileID:               d.FileID,
			BrandID:              d.BrandID,
			SourceType:           ledgerentities.SourceType(d.SourceType),
			SourceTitle:          d.SourceTitle,
			DownloadedAt:         d.DownloadedAt.UTC(),
			DownloadedBy:         d.DownloadedBy,
			VersionDownloaded:    d.Version,
			CurrentVersionStatus: ledgerentities.VersionStatus(d.Status),
			Frequency:            d.Frequency,
		}
		if entry.VersionDownloaded == "" {
			entry.VersionDownloaded = ledgerentities.InitialVersion
		}
		if entry.CurrentVersionStatus == "" {
			entry.CurrentVersionStatus = ledgerentities.VersionStatusLatest
		}
		for _, event := range d.Logs {
			entry.Logs = append(entry.Logs, ledgerentities.LogEvent{
				UserName: event.User,
				Date:     event.Date.UTC(),
				Status:   ledgerentities.LogStatus(event.Status),
			})
		}
		if entry.Frequency < len(entry.Logs) {
			entry.Frequency = len(entry.Logs)
		}
		if entry.Frequency < 1 {
			entry.Frequency = 1
		}
		items = append(items, entry)
	}
	return items
}
