package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandbridge/contexts/campaign-editorial/campaign-service/application"
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/campaign-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

// UpdateCampaignCommand is a partial update; nil fields are left untouched.
type UpdateCampaignCommand struct {
	CampaignID    string
	Title         *string
	StartDate     *string
	EndDate       *string
	Audience      *string
	CoverImage    *string
	AssetRefs     *[]string
	TemplateRefs  *[]string
	IsPinned      *bool
	RetailerUsage map[string]bool
}

type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Campaign{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Campaign{}, err
	}
	if campaign.Status == entities.CampaignStatusEnded || campaign.Status == entities.CampaignStatusArchived {
		return entities.Campaign{}, domainerrors.ErrCampaignNotEditable
	}

	contentChanged := false
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" || len(title) > 120 {
			return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Title = title
		contentChanged = true
	}
	if cmd.StartDate != nil {
		campaign.StartDate = strings.TrimSpace(*cmd.StartDate)
		contentChanged = true
	}
	if cmd.EndDate != nil {
		campaign.EndDate = strings.TrimSpace(*cmd.EndDate)
		contentChanged = true
	}
	if cmd.Audience != nil {
		campaign.Audience = strings.TrimSpace(*cmd.Audience)
		if campaign.Audience == "" {
			campaign.Audience = entities.AudienceUnspecified
		}
		contentChanged = true
	}
	if cmd.CoverImage != nil {
		campaign.CoverImage = strings.TrimSpace(*cmd.CoverImage)
		contentChanged = true
	}
	if cmd.AssetRefs != nil {
		campaign.AssetRefs = normalizeRefs(*cmd.AssetRefs)
		contentChanged = true
	}
	if cmd.TemplateRefs != nil {
		campaign.TemplateRefs = normalizeRefs(*cmd.TemplateRefs)
		contentChanged = true
	}
	if cmd.IsPinned != nil {
		campaign.IsPinned = *cmd.IsPinned
	}
	if cmd.RetailerUsage != nil {
		campaign.RetailerUsage = copyUsage(cmd.RetailerUsage)
	}

	if campaign.Status == entities.CampaignStatusScheduled {
		if readiness := entities.EvaluateReadiness(campaign); !readiness.IsReady {
			return entities.Campaign{}, readinessError(campaign.CampaignID, readiness)
		}
	}

	now := uc.Clock.Now().UTC()
	campaign.UpdatedAt = now
	live := campaign.Status == entities.CampaignStatusActive || campaign.Status == entities.CampaignStatusMaintenance
	if live && contentChanged {
		// Retailers already see this campaign; flag the change for them.
		campaign.LastUpdatedAt = &now
		campaign.UpdatePending = true
	}
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	publishCampaignEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"campaign.updated",
		campaign.CampaignID,
		now,
		contractsv1.Notification{
			Message: "Campaign \"" + campaign.Title + "\" updated",
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"campaign_id":    campaign.CampaignID,
			"update_pending": campaign.UpdatePending,
		},
	)

	logger.Info("campaign updated",
		"event", "campaign_updated",
		"module", "campaign-editorial/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"update_pending", campaign.UpdatePending,
	)
	return campaign, nil
}
