package entities

import (
	"math"
	"time"
)

// Phase is the read-only lifecycle label derived from status and dates. It is
// never stored on the campaign.
type Phase string

const (
	PhaseScheduled    Phase = "scheduled"
	PhaseDraft        Phase = "draft"
	PhaseActive       Phase = "active"
	PhaseExpiringSoon Phase = "expiring_soon"
	PhaseEndingToday  Phase = "ending_today"
	PhaseEnded        Phase = "ended"
	PhaseExpired      Phase = "expired"
)

func IsSupportedPhase(value Phase) bool {
	switch value {
	case PhaseScheduled,
		PhaseDraft,
		PhaseActive,
		PhaseExpiringSoon,
		PhaseEndingToday,
		PhaseEnded,
		PhaseExpired:
		return true
	default:
		return false
	}
}

const (
	expiringSoonDays = 7
	endingTodayDays  = 1
	newBadgeWindow   = 72 * time.Hour
	updatedWindow    = 48 * time.Hour
)

// DerivePhase applies the phase rules in order; the first match wins.
func DerivePhase(campaign Campaign, now time.Time) Phase {
	if campaign.Status == CampaignStatusEnded || campaign.Status == CampaignStatusArchived {
		return PhaseEnded
	}
	if start, ok := campaign.Start(); ok && start.After(now.UTC()) {
		return PhaseScheduled
	}
	if campaign.Status == CampaignStatusDraft {
		return PhaseDraft
	}
	if campaign.IsPermanent() {
		return PhaseActive
	}
	end, ok := campaign.End()
	if !ok {
		return PhaseActive
	}

	daysLeft := DaysLeft(end, now)
	switch {
	case daysLeft <= 0:
		return PhaseExpired
	case daysLeft <= endingTodayDays:
		return PhaseEndingToday
	case daysLeft <= expiringSoonDays:
		return PhaseExpiringSoon
	default:
		return PhaseActive
	}
}

// DaysLeft is the whole number of days until end, rounded up.
func DaysLeft(end time.Time, now time.Time) int {
	remaining := end.UTC().Sub(now.UTC())
	return int(math.Ceil(float64(remaining) / float64(24*time.Hour)))
}

// Badges are UI flags layered on top of the phase.
type Badges struct {
	New     bool
	Updated bool
}

// DeriveBadges reports the "new" and "updated" flags. New suppresses Updated.
func DeriveBadges(campaign Campaign, now time.Time) Badges {
	if campaign.Status != CampaignStatusActive {
		return Badges{}
	}
	now = now.UTC()

	if start, ok := campaign.Start(); ok {
		sinceStart := now.Sub(start)
		if sinceStart >= 0 && sinceStart <= newBadgeWindow {
			return Badges{New: true}
		}
	}
	if campaign.LastUpdatedAt != nil {
		sinceUpdate := now.Sub(campaign.LastUpdatedAt.UTC())
		if sinceUpdate >= 0 && sinceUpdate <= updatedWindow {
			return Badges{Updated: true}
		}
	}
	return Badges{}
}
