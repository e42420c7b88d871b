package uiadapter

import (
	"context"
	"log/slog"
	"time"

	"brandbridge/contexts/campaign-editorial/campaign-service/application/commands"
	"brandbridge/contexts/campaign-editorial/campaign-service/application/queries"
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	viewtransport "brandbridge/contexts/campaign-editorial/campaign-service/transport/view"
)

// Handler is the boundary the dashboard's event handlers call into.
type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	UpdateCampaign commands.UpdateCampaignUseCase
	ChangeStatus   commands.ChangeStatusUseCase
	GetCampaign    queries.GetCampaignUseCase
	ListCampaigns  queries.ListCampaignsUseCase
	ListHistory    queries.ListHistoryUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	brandID string,
	req viewtransport.CreateCampaignRequest,
) (viewtransport.CampaignResponse, error) {
	item, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		BrandID:       brandID,
		Title:         req.Title,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Audience:      req.Audience,
		CoverImage:    req.CoverImage,
		AssetRefs:     append([]string(nil), req.AssetRefs...),
		TemplateRefs:  append([]string(nil), req.TemplateRefs...),
		IsPinned:      req.IsPinned,
		RetailerUsage: req.RetailerUsage,
		Schedule:      req.Schedule,
	})
	if err != nil {
		return viewtransport.CampaignResponse{}, err
	}
	return h.GetCampaignHandler(ctx, item.CampaignID)
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	campaignID string,
	req viewtransport.UpdateCampaignRequest,
) (viewtransport.CampaignResponse, error) {
	_, err := h.UpdateCampaign.Execute(ctx, commands.UpdateCampaignCommand{
		CampaignID:    campaignID,
		Title:         req.Title,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Audience:      req.Audience,
		CoverImage:    req.CoverImage,
		AssetRefs:     req.AssetRefs,
		TemplateRefs:  req.TemplateRefs,
		IsPinned:      req.IsPinned,
		RetailerUsage: req.RetailerUsage,
	})
	if err != nil {
		return viewtransport.CampaignResponse{}, err
	}
	return h.GetCampaignHandler(ctx, campaignID)
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (viewtransport.CampaignResponse, error) {
	item, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return viewtransport.CampaignResponse{}, err
	}
	return viewtransport.CampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) ListCampaignsHandler(
	ctx context.Context,
	brandID string,
	status string,
	phase string,
) (viewtransport.ListCampaignsResponse, error) {
	items, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{
		BrandID: brandID,
		Status:  status,
		Phase:   phase,
	})
	if err != nil {
		return viewtransport.ListCampaignsResponse{}, err
	}
	result := make([]viewtransport.CampaignDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaign(item))
	}
	return viewtransport.ListCampaignsResponse{Items: result}, nil
}

func (h Handler) PublishCampaignHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionPublish, req.Reason)
}

func (h Handler) EndCampaignHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionEnd, req.Reason)
}

func (h Handler) ReactivateCampaignHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionReactivate, req.Reason)
}

func (h Handler) StartMaintenanceHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionStartMaintenance, req.Reason)
}

func (h Handler) FinishMaintenanceHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionFinishMaintenance, req.Reason)
}

func (h Handler) ArchiveCampaignHandler(ctx context.Context, actorID string, campaignID string, req viewtransport.StatusActionRequest) (viewtransport.CampaignResponse, error) {
	return h.changeStatus(ctx, actorID, campaignID, entities.StatusActionArchive, req.Reason)
}

func (h Handler) CampaignHistoryHandler(ctx context.Context, campaignID string) (viewtransport.HistoryResponse, error) {
	items, err := h.ListHistory.Execute(ctx, campaignID)
	if err != nil {
		return viewtransport.HistoryResponse{}, err
	}
	result := make([]viewtransport.StateHistoryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, viewtransport.StateHistoryDTO{
			Action:     string(item.Action),
			FromStatus: string(item.FromState),
			ToStatus:   string(item.ToState),
			ChangedBy:  item.ChangedBy,
			Reason:     item.ChangeReason,
			CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return viewtransport.HistoryResponse{Items: result}, nil
}

func (h Handler) changeStatus(
	ctx context.Context,
	actorID string,
	campaignID string,
	action entities.StatusAction,
	reason string,
) (viewtransport.CampaignResponse, error) {
	if _, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		CampaignID: campaignID,
		ActorID:    actorID,
		Action:     action,
		Reason:     reason,
	}); err != nil {
		return viewtransport.CampaignResponse{}, err
	}
	return h.GetCampaignHandler(ctx, campaignID)
}

func mapCampaign(item queries.CampaignView) viewtransport.CampaignDTO {
	campaign := item.Campaign
	readiness := viewtransport.ReadinessDTO{
		Items:   make([]viewtransport.ReadinessItemDTO, 0, len(item.Readiness.Items)),
		IsReady: item.Readiness.IsReady,
	}
	for _, check := range item.Readiness.Items {
		readiness.Items = append(readiness.Items, viewtransport.ReadinessItemDTO{
			Key:   string(check.Key),
			Label: check.Label,
			Done:  check.Done,
		})
	}

	dto := viewtransport.CampaignDTO{
		CampaignID:    campaign.CampaignID,
		BrandID:       campaign.BrandID,
		Title:         campaign.Title,
		Status:        string(campaign.Status),
		Phase:         string(item.Phase),
		IsNew:         item.Badges.New,
		IsUpdated:     item.Badges.Updated,
		DaysLeft:      item.DaysLeft,
		StartDate:     campaign.StartDate,
		EndDate:       campaign.EndDate,
		Audience:      campaign.Audience,
		CoverImage:    campaign.CoverImage,
		AssetRefs:     append([]string(nil), campaign.AssetRefs...),
		TemplateRefs:  append([]string(nil), campaign.TemplateRefs...),
		IsPinned:      campaign.IsPinned,
		UpdatePending: campaign.UpdatePending,
		RetailerUsage: campaign.RetailerUsage,
		Readiness:     readiness,
		CreatedAt:     campaign.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     campaign.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if campaign.PublishedAt != nil {
		dto.PublishedAt = campaign.PublishedAt.UTC().Format(time.RFC3339)
	}
	if campaign.EndedAt != nil {
		dto.EndedAt = campaign.EndedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
