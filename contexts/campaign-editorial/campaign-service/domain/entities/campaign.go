package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft       CampaignStatus = "draft"
	CampaignStatusScheduled   CampaignStatus = "scheduled"
	CampaignStatusActive      CampaignStatus = "active"
	CampaignStatusEnded       CampaignStatus = "ended"
	CampaignStatusMaintenance CampaignStatus = "maintenance"
	CampaignStatusArchived    CampaignStatus = "archived"
)

const (
	// EndDatePermanent marks a campaign that never expires.
	EndDatePermanent = "Permanent"
	// AudienceUnspecified is the placeholder audience of a fresh draft.
	AudienceUnspecified = "Unspecified"
	// DateLayout is the calendar-date layout used by StartDate and EndDate.
	DateLayout = "2006-01-02"
)

type Campaign struct {
	CampaignID    string
	BrandID       string
	Title         string
	Status        CampaignStatus
	StartDate     string
	EndDate       string
	Audience      string
	CoverImage    string
	AssetRefs     []string
	TemplateRefs  []string
	IsPinned      bool
	UpdatePending bool
	RetailerUsage map[string]bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastUpdatedAt *time.Time
	PublishedAt   *time.Time
	EndedAt       *time.Time
}

func IsSupportedStatus(value CampaignStatus) bool {
	switch value {
	case CampaignStatusDraft,
		CampaignStatusScheduled,
		CampaignStatusActive,
		CampaignStatusEnded,
		CampaignStatusMaintenance,
		CampaignStatusArchived:
		return true
	default:
		return false
	}
}

func (c Campaign) IsPermanent() bool {
	return strings.EqualFold(strings.TrimSpace(c.EndDate), EndDatePermanent)
}

// Start returns the parsed start date. ok is false when the date is empty or
// malformed.
func (c Campaign) Start() (time.Time, bool) {
	return ParseDate(c.StartDate)
}

// End returns the parsed end date. A permanent campaign has no end.
func (c Campaign) End() (time.Time, bool) {
	if c.IsPermanent() {
		return time.Time{}, false
	}
	return ParseDate(c.EndDate)
}

// ParseDate reads a YYYY-MM-DD date at midnight UTC. RFC 3339 timestamps are
// accepted as well.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return parsed.UTC(), true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), true
	}
	return time.Time{}, false
}

func (c Campaign) ValidateCreate() bool {
	title := strings.TrimSpace(c.Title)
	return strings.TrimSpace(c.CampaignID) != "" &&
		strings.TrimSpace(c.BrandID) != "" &&
		title != "" &&
		len(title) <= 120 &&
		IsSupportedStatus(c.Status)
}
