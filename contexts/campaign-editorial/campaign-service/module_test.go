package campaignservice_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	campaignservice "brandbridge/contexts/campaign-editorial/campaign-service"
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/campaign-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
	viewtransport "brandbridge/contexts/campaign-editorial/campaign-service/transport/view"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type recordingPublisher struct {
	events []ports.EventEnvelope
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	p.events = append(p.events, event)
	return nil
}

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(context.Context, string, ports.EventEnvelope) error {
	p.calls++
	return errors.New("bus unavailable")
}

func readyDraft() entities.Campaign {
	return entities.Campaign{
		CampaignID: "cmp-ready",
		BrandID:    "brand-1",
		Title:      "Holiday Window",
		Status:     entities.CampaignStatusDraft,
		CoverImage: "https://cdn.example/holiday.png",
		AssetRefs:  []string{"asset-1"},
		Audience:   "All Retailers",
		StartDate:  "2025-11-20",
		EndDate:    "2025-12-31",
	}
}

func newTestModule(seed []entities.Campaign) (campaignservice.Module, *recordingPublisher) {
	publisher := &recordingPublisher{}
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	return campaignservice.NewInMemoryModule(seed, clock, publisher, nil), publisher
}

func TestPublishBlockedByReadiness(t *testing.T) {
	module, publisher := newTestModule([]entities.Campaign{
		{
			CampaignID: "cmp-draft",
			BrandID:    "brand-1",
			Title:      "Holiday Window",
			Status:     entities.CampaignStatusDraft,
			AssetRefs:  []string{"asset-1"},
			Audience:   "All Retailers",
			StartDate:  "2025-11-20",
			EndDate:    "2025-12-31",
		},
	})

	_, err := module.Handler.PublishCampaignHandler(context.Background(), "brand-1", "cmp-draft", viewtransport.StatusActionRequest{})
	if !errors.Is(err, domainerrors.ErrCampaignNotReady) || !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected readiness validation error, got %v", err)
	}
	var readinessErr *domainerrors.ReadinessError
	if !errors.As(err, &readinessErr) {
		t.Fatalf("expected ReadinessError, got %T", err)
	}
	if len(readinessErr.Missing) != 1 || readinessErr.Missing[0] != string(entities.ReadinessHasCover) {
		t.Fatalf("expected cover to be missing, got %v", readinessErr.Missing)
	}

	fetched, err := module.Handler.GetCampaignHandler(context.Background(), "cmp-draft")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.Status != string(entities.CampaignStatusDraft) {
		t.Fatalf("expected draft status, got %s", fetched.Campaign.Status)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no notification, got %d", len(publisher.events))
	}
}

func TestPublishEndReactivateFlow(t *testing.T) {
	module, publisher := newTestModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateCampaignHandler(ctx, "brand-1", viewtransport.CreateCampaignRequest{
		Title:      "Spring Launch",
		StartDate:  "2025-11-20",
		EndDate:    "2025-11-30",
		Audience:   "Gold Tier",
		CoverImage: "https://cdn.example/spring.png",
		AssetRefs:  []string{"asset-1", "asset-1", " "},
	})
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if created.Campaign.Phase != string(entities.PhaseDraft) || !created.Campaign.Readiness.IsReady {
		t.Fatalf("unexpected created campaign %+v", created.Campaign)
	}
	if len(created.Campaign.AssetRefs) != 1 {
		t.Fatalf("expected asset refs to be normalized, got %v", created.Campaign.AssetRefs)
	}
	id := created.Campaign.CampaignID

	published, err := module.Handler.PublishCampaignHandler(ctx, "brand-1", id, viewtransport.StatusActionRequest{})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Campaign.Status != "active" || published.Campaign.Phase != string(entities.PhaseExpiringSoon) {
		t.Fatalf("unexpected published campaign status=%s phase=%s", published.Campaign.Status, published.Campaign.Phase)
	}

	if _, err := module.Handler.EndCampaignHandler(ctx, "brand-1", id, viewtransport.StatusActionRequest{Reason: "stock ran out"}); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	reactivated, err := module.Handler.ReactivateCampaignHandler(ctx, "brand-1", id, viewtransport.StatusActionRequest{})
	if err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if reactivated.Campaign.Status != "active" || reactivated.Campaign.EndedAt != "" {
		t.Fatalf("unexpected reactivated campaign %+v", reactivated.Campaign)
	}

	history, err := module.Handler.CampaignHistoryHandler(ctx, id)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Items) != 3 || history.Items[1].Reason != "stock ran out" {
		t.Fatalf("unexpected history %+v", history.Items)
	}

	// create + publish + end + reactivate
	if len(publisher.events) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(publisher.events))
	}
	for _, event := range publisher.events {
		if event.Notification.Message == "" || event.PartitionKey != id {
			t.Fatalf("unexpected event %+v", event)
		}
	}
}

func TestChangeStatusRejectsUnknownTransition(t *testing.T) {
	module, _ := newTestModule([]entities.Campaign{
		{CampaignID: "cmp-ended", BrandID: "brand-1", Title: "Old", Status: entities.CampaignStatusEnded},
	})

	_, err := module.Handler.StartMaintenanceHandler(context.Background(), "brand-1", "cmp-ended", viewtransport.StatusActionRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	_, err = module.Handler.EndCampaignHandler(context.Background(), "brand-1", "cmp-missing", viewtransport.StatusActionRequest{})
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateLiveCampaignFlagsUpdate(t *testing.T) {
	module, _ := newTestModule([]entities.Campaign{
		{
			CampaignID: "cmp-live",
			BrandID:    "brand-1",
			Title:      "Live",
			Status:     entities.CampaignStatusActive,
			StartDate:  "2025-10-01",
			EndDate:    entities.EndDatePermanent,
		},
	})

	cover := "https://cdn.example/new-cover.png"
	updated, err := module.Handler.UpdateCampaignHandler(context.Background(), "cmp-live", viewtransport.UpdateCampaignRequest{
		CoverImage: &cover,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Campaign.UpdatePending || !updated.Campaign.IsUpdated || updated.Campaign.IsNew {
		t.Fatalf("expected update flags, got %+v", updated.Campaign)
	}
}

func TestListCampaignsPinnedFirstAndPhaseFilter(t *testing.T) {
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	module, _ := newTestModule([]entities.Campaign{
		{CampaignID: "a", BrandID: "brand-1", Title: "A", Status: entities.CampaignStatusActive, EndDate: "2025-11-27", CreatedAt: base},
		{CampaignID: "b", BrandID: "brand-1", Title: "B", Status: entities.CampaignStatusActive, EndDate: entities.EndDatePermanent, CreatedAt: base.Add(time.Hour)},
		{CampaignID: "c", BrandID: "brand-1", Title: "C", Status: entities.CampaignStatusDraft, IsPinned: true, CreatedAt: base.Add(-time.Hour)},
		{CampaignID: "d", BrandID: "brand-2", Title: "D", Status: entities.CampaignStatusActive, CreatedAt: base},
	})

	listed, err := module.Handler.ListCampaignsHandler(context.Background(), "brand-1", "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed.Items) != 3 || listed.Items[0].CampaignID != "c" || listed.Items[1].CampaignID != "b" {
		t.Fatalf("unexpected order %+v", listed.Items)
	}

	ending, err := module.Handler.ListCampaignsHandler(context.Background(), "brand-1", "", string(entities.PhaseEndingToday))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(ending.Items) != 1 || ending.Items[0].CampaignID != "a" {
		t.Fatalf("expected only campaign a, got %+v", ending.Items)
	}

	if _, err := module.Handler.ListCampaignsHandler(context.Background(), "brand-1", "bogus", ""); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestCreateCampaignDefaults(t *testing.T) {
	module, publisher := newTestModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateCampaignHandler(ctx, "brand-1", viewtransport.CreateCampaignRequest{
		Title:     "  Spring Preview  ",
		AssetRefs: []string{"asset-1", " asset-1 ", ""},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	item := created.Campaign
	if item.Title != "Spring Preview" || item.Status != "draft" || item.Phase != "draft" {
		t.Fatalf("unexpected campaign: %+v", item)
	}
	if item.Audience != entities.AudienceUnspecified || len(item.AssetRefs) != 1 {
		t.Fatalf("expected default audience and deduplicated refs, got %+v", item)
	}
	if item.Readiness.IsReady {
		t.Fatalf("expected a fresh draft to be incomplete")
	}
	if len(publisher.events) != 1 || publisher.events[0].EventType != "campaign.created" {
		t.Fatalf("expected one campaign.created event, got %+v", publisher.events)
	}

	if _, err := module.Handler.CreateCampaignHandler(ctx, "brand-1", viewtransport.CreateCampaignRequest{Title: "   "}); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for blank title, got %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected no event for a failed create, got %d", len(publisher.events))
	}
}

func TestCancelledPublishLeavesCampaignDraft(t *testing.T) {
	module, publisher := newTestModule([]entities.Campaign{readyDraft()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := module.Handler.PublishCampaignHandler(ctx, "brand-1", "cmp-ready", viewtransport.StatusActionRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	fetched, err := module.Handler.GetCampaignHandler(context.Background(), "cmp-ready")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.Status != string(entities.CampaignStatusDraft) {
		t.Fatalf("expected draft status, got %s", fetched.Campaign.Status)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no notification, got %d", len(publisher.events))
	}
}

func TestPublishSurvivesNotificationFailure(t *testing.T) {
	publisher := &failingPublisher{}
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	module := campaignservice.NewInMemoryModule([]entities.Campaign{readyDraft()}, clock, publisher, nil)
	ctx := context.Background()

	published, err := module.Handler.PublishCampaignHandler(ctx, "brand-1", "cmp-ready", viewtransport.StatusActionRequest{})
	if err != nil {
		t.Fatalf("expected publish to succeed despite notification failure, got %v", err)
	}
	if published.Campaign.Status != string(entities.CampaignStatusActive) {
		t.Fatalf("expected active status, got %s", published.Campaign.Status)
	}
	fetched, err := module.Handler.GetCampaignHandler(ctx, "cmp-ready")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.Status != string(entities.CampaignStatusActive) || fetched.Campaign.PublishedAt == "" {
		t.Fatalf("expected stored campaign to be live, got %+v", fetched.Campaign)
	}
	if publisher.calls != 1 {
		t.Fatalf("expected one publish attempt, got %d", publisher.calls)
	}
}

func TestStateChangeOnUnknownCampaignIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	module := campaignservice.NewInMemoryModule(nil, clock, &recordingPublisher{}, logger)

	_, err := module.Handler.PublishCampaignHandler(context.Background(), "brand-1", "cmp-missing", viewtransport.StatusActionRequest{})
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(buf.String(), "campaign_state_change_skipped") || !strings.Contains(buf.String(), "campaign_id=cmp-missing") {
		t.Fatalf("expected skipped state change to be logged, got %q", buf.String())
	}
}

func TestListCampaignsRejectsUnknownPhase(t *testing.T) {
	module, _ := newTestModule([]entities.Campaign{readyDraft()})

	_, err := module.Handler.ListCampaignsHandler(context.Background(), "brand-1", "", "bogus")
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown phase, got %v", err)
	}
	listed, err := module.Handler.ListCampaignsHandler(context.Background(), "brand-1", "", " draft ")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed.Items) != 1 {
		t.Fatalf("expected the draft to match, got %+v", listed.Items)
	}
}

func TestScheduleRequiresReadiness(t *testing.T) {
	module, publisher := newTestModule(nil)
	ctx := context.Background()

	_, err := module.Handler.CreateCampaignHandler(ctx, "brand-1", viewtransport.CreateCampaignRequest{
		Title:    "Incomplete",
		Schedule: true,
	})
	var readinessErr *domainerrors.ReadinessError
	if !errors.As(err, &readinessErr) || !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected readiness error, got %v", err)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no event for a blocked schedule, got %d", len(publisher.events))
	}
	listed, err := module.Handler.ListCampaignsHandler(ctx, "brand-1", "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed.Items) != 0 {
		t.Fatalf("expected nothing stored, got %+v", listed.Items)
	}

	scheduled, err := module.Handler.CreateCampaignHandler(ctx, "brand-1", viewtransport.CreateCampaignRequest{
		Title:      "Complete",
		StartDate:  "2025-12-01",
		EndDate:    "2025-12-31",
		Audience:   "Gold Tier",
		CoverImage: "https://cdn.example/complete.png",
		AssetRefs:  []string{"asset-1"},
		Schedule:   true,
	})
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if scheduled.Campaign.Status != string(entities.CampaignStatusScheduled) {
		t.Fatalf("expected scheduled status, got %s", scheduled.Campaign.Status)
	}

	blank := ""
	_, err = module.Handler.UpdateCampaignHandler(ctx, scheduled.Campaign.CampaignID, viewtransport.UpdateCampaignRequest{CoverImage: &blank})
	if !errors.As(err, &readinessErr) {
		t.Fatalf("expected readiness error when a scheduled campaign loses its cover, got %v", err)
	}
	fetched, err := module.Handler.GetCampaignHandler(ctx, scheduled.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.CoverImage == "" {
		t.Fatalf("expected cover to survive the refused edit")
	}
}
