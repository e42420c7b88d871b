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

type ChangeStatusCommand struct {
	CampaignID string
	ActorID    string
	Action     entities.StatusAction
	Reason     string
}

type ChangeStatusUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Campaign{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		logger.Warn("campaign state change skipped",
			"event", "campaign_state_change_skipped",
			"module", "campaign-editorial/campaign-service",
			"layer", "application",
			"campaign_id", strings.TrimSpace(cmd.CampaignID),
			"action", string(cmd.Action),
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}

	from := campaign.Status
	to, gated, ok := entities.ResolveTransition(from, cmd.Action)
	if !ok {
		logger.Warn("campaign state transition refused",
			"event", "campaign_state_transition_refused",
			"module", "campaign-editorial/campaign-service",
			"layer", "application",
			"campaign_id", campaign.CampaignID,
			"from_status", string(from),
			"action", string(cmd.Action),
		)
		return entities.Campaign{}, domainerrors.ErrInvalidStateTransition
	}
	if gated {
		readiness := entities.EvaluateReadiness(campaign)
		if !readiness.IsReady {
			err := readinessError(campaign.CampaignID, readiness)
			logger.Info("campaign publish blocked by readiness",
				"event", "campaign_publish_blocked",
				"module", "campaign-editorial/campaign-service",
				"layer", "application",
				"campaign_id", campaign.CampaignID,
				"missing", err.Missing,
			)
			return entities.Campaign{}, err
		}
	}

	now := uc.Clock.Now().UTC()
	switch cmd.Action {
	case entities.StatusActionPublish:
		campaign.PublishedAt = &now
	case entities.StatusActionEnd:
		campaign.EndedAt = &now
	case entities.StatusActionReactivate:
		campaign.EndedAt = nil
	}
	campaign.Status = to
	campaign.UpdatedAt = now
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	historyID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}
	if err := uc.History.AppendState(ctx, entities.StateHistory{
		HistoryID:    historyID,
		CampaignID:   campaign.CampaignID,
		Action:       cmd.Action,
		FromState:    from,
		ToState:      to,
		ChangedBy:    strings.TrimSpace(cmd.ActorID),
		ChangeReason: strings.TrimSpace(cmd.Reason),
		CreatedAt:    now,
	}); err != nil {
		return entities.Campaign{}, err
	}

	publishCampaignEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"campaign.status_changed",
		campaign.CampaignID,
		now,
		contractsv1.Notification{
			Message: statusMessage(campaign.Title, cmd.Action),
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"campaign_id": campaign.CampaignID,
			"action":      string(cmd.Action),
			"from_status": string(from),
			"to_status":   string(to),
		},
	)

	logger.Info("campaign state changed",
		"event", "campaign_state_changed",
		"module", "campaign-editorial/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"from_status", string(from),
		"to_status", string(to),
	)
	return campaign, nil
}

func statusMessage(title string, action entities.StatusAction) string {
	quoted := "\"" + title + "\""
	switch action {
	case entities.StatusActionPublish:
		return "Campaign " + quoted + " published"
	case entities.StatusActionEnd:
		return "Campaign " + quoted + " ended"
	case entities.StatusActionReactivate:
		return "Campaign " + quoted + " reactivated"
	case entities.StatusActionStartMaintenance:
		return "Campaign " + quoted + " is under maintenance"
	case entities.StatusActionFinishMaintenance:
		return "Campaign " + quoted + " is back online"
	case entities.StatusActionArchive:
		return "Campaign " + quoted + " archived"
	default:
		return "Campaign " + quoted + " updated"
	}
}
