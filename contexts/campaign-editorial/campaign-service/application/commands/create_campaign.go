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

type CreateCampaignCommand struct {
	BrandID       string
	Title         string
	StartDate     string
	EndDate       string
	Audience      string
	CoverImage    string
	AssetRefs     []string
	TemplateRefs  []string
	IsPinned      bool
	RetailerUsage map[string]bool
	Schedule      bool
}

type CreateCampaignUseCase struct {
	Campaigns   ports.CampaignRepository
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute stores a new campaign as a draft, or as scheduled when requested.
func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Campaign{}, err
	}
	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}

	now := uc.Clock.Now().UTC()
	status := entities.CampaignStatusDraft
	if cmd.Schedule {
		status = entities.CampaignStatusScheduled
	}
	audience := strings.TrimSpace(cmd.Audience)
	if audience == "" {
		audience = entities.AudienceUnspecified
	}

	campaign := entities.Campaign{
		CampaignID:    campaignID,
		BrandID:       strings.TrimSpace(cmd.BrandID),
		Title:         strings.TrimSpace(cmd.Title),
		Status:        status,
		StartDate:     strings.TrimSpace(cmd.StartDate),
		EndDate:       strings.TrimSpace(cmd.EndDate),
		Audience:      audience,
		CoverImage:    strings.TrimSpace(cmd.CoverImage),
		AssetRefs:     normalizeRefs(cmd.AssetRefs),
		TemplateRefs:  normalizeRefs(cmd.TemplateRefs),
		IsPinned:      cmd.IsPinned,
		RetailerUsage: copyUsage(cmd.RetailerUsage),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !campaign.ValidateCreate() {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	// A scheduled campaign goes live without another check, so it must be
	// ready when it is scheduled.
	if campaign.Status == entities.CampaignStatusScheduled {
		if readiness := entities.EvaluateReadiness(campaign); !readiness.IsReady {
			err := readinessError(campaign.CampaignID, readiness)
			logger.Info("campaign scheduling blocked by readiness",
				"event", "campaign_schedule_blocked",
				"module", "campaign-editorial/campaign-service",
				"layer", "application",
				"brand_id", campaign.BrandID,
				"missing", err.Missing,
			)
			return entities.Campaign{}, err
		}
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	publishCampaignEvent(ctx, logger, uc.Publisher, uc.IDGenerator,
		"campaign.created",
		campaign.CampaignID,
		now,
		contractsv1.Notification{
			Message: "Campaign \"" + campaign.Title + "\" saved as " + string(campaign.Status),
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"campaign_id": campaign.CampaignID,
			"brand_id":    campaign.BrandID,
			"status":      string(campaign.Status),
		},
	)

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "campaign-editorial/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"brand_id", campaign.BrandID,
		"status", string(campaign.Status),
	)
	return campaign, nil
}

func normalizeRefs(items []string) []string {
	result := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		value := strings.TrimSpace(item)
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}

func copyUsage(usage map[string]bool) map[string]bool {
	if usage == nil {
		return nil
	}
	result := make(map[string]bool, len(usage))
	for channel, used := range usage {
		result[channel] = used
	}
	return result
}
