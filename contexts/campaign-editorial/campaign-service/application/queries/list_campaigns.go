package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	application "brandbridge/contexts/campaign-editorial/campaign-service/application"
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/campaign-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
)

type ListCampaignsQuery struct {
	BrandID string
	Status  string
	Phase   string
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Execute returns pinned campaigns first, then newest first.
func (uc ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]CampaignView, error) {
	logger := application.ResolveLogger(uc.Logger)
	filter := ports.CampaignFilter{
		BrandID: strings.TrimSpace(query.BrandID),
	}
	if status := strings.TrimSpace(query.Status); status != "" {
		filter.Status = entities.CampaignStatus(status)
		if !entities.IsSupportedStatus(filter.Status) {
			return nil, domainerrors.ErrInvalidCampaignInput
		}
	}
	phase := entities.Phase(strings.TrimSpace(query.Phase))
	if phase != "" && !entities.IsSupportedPhase(phase) {
		return nil, domainerrors.ErrInvalidCampaignInput
	}
	items, err := uc.Campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	views := make([]CampaignView, 0, len(items))
	for _, item := range items {
		view := NewCampaignView(item, now)
		if phase != "" && view.Phase != phase {
			continue
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Campaign.IsPinned != views[j].Campaign.IsPinned {
			return views[i].Campaign.IsPinned
		}
		return views[i].Campaign.CreatedAt.After(views[j].Campaign.CreatedAt)
	})

	logger.Debug("campaigns listed",
		"event", "campaigns_listed",
		"module", "campaign-editorial/campaign-service",
		"layer", "application",
		"count", len(views),
	)
	return views, nil
}
