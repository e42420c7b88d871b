package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
)

// CampaignView is a campaign with its derived, read-only state.
type CampaignView struct {
	Campaign  entities.Campaign
	Phase     entities.Phase
	Badges    entities.Badges
	Readiness entities.Readiness
	DaysLeft  *int
}

func NewCampaignView(campaign entities.Campaign, now time.Time) CampaignView {
	view := CampaignView{
		Campaign:  campaign,
		Phase:     entities.DerivePhase(campaign, now),
		Badges:    entities.DeriveBadges(campaign, now),
		Readiness: entities.EvaluateReadiness(campaign),
	}
	if end, ok := campaign.End(); ok {
		days := entities.DaysLeft(end, now)
		view.DaysLeft = &days
	}
	return view
}

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (CampaignView, error) {
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return CampaignView{}, err
	}
	return NewCampaignView(campaign, uc.Clock.Now()), nil
}

type ListHistoryUseCase struct {
	History ports.HistoryRepository
	Logger  *slog.Logger
}

func (uc ListHistoryUseCase) Execute(ctx context.Context, campaignID string) ([]entities.StateHistory, error) {
	return uc.History.ListStates(ctx, strings.TrimSpace(campaignID))
}
