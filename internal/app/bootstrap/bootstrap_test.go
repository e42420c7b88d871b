package bootstrap

import (
	"context"
	"testing"
	"time"

	ledgerview "brandbridge/contexts/asset-distribution/engagement-ledger/transport/view"
	campaignview "brandbridge/contexts/campaign-editorial/campaign-service/transport/view"
	contractsv1 "brandbridge/contracts/events/v1"
	"brandbridge/internal/app/fixture"
	"brandbridge/internal/platform/config"
)

func testSeed(t *testing.T) fixture.Fixture {
	t.Helper()
	f, err := fixture.Parse([]byte(`
now: 2025-11-26T09:00:00Z
campaigns:
  - id: cmp-1
    brand_id: brand-1
    title: Holiday Window
    status: draft
    start_date: "2025-11-20"
    end_date: "2025-12-31"
    audience: All Retailers
    cover_image: cover.png
    asset_refs: [asset-1]
    created_at: 2025-11-01T10:00:00Z
tasks:
  - id: task-1
    brand_id: brand-1
    title: Endcap photo
    submissions:
      - {id: sub-1, retailer_id: r-1, retailer_name: Corner Market, submitted_at: 2025-11-20T08:00:00Z}
files:
  - {id: f1, brand_id: brand-1, name: Holiday Window.zip, type: zip, size_bytes: 1024}
`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return f
}

func TestBuildWiresNotifications(t *testing.T) {
	app, err := Build(context.Background(), config.Config{ServiceName: "test", EnableMetrics: true}, testSeed(t), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer app.Close()
	ctx := context.Background()

	published, err := app.Campaigns.Handler.PublishCampaignHandler(ctx, "brand-1", "cmp-1", campaignview.StatusActionRequest{})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Campaign.Phase != "active" {
		t.Fatalf("expected active phase, got %s", published.Campaign.Phase)
	}
	if _, err := app.Submissions.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "sub-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := app.Ledger.Handler.RecordDownloadHandler(ctx, "Alice", ledgerview.RecordDownloadRequest{
		FileID:      "f1",
		BrandID:     "brand-1",
		SourceType:  "campaign",
		SourceTitle: "Holiday Window",
	}); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	items := app.Notifications.Drain()
	if len(items) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(items))
	}
	for _, item := range items {
		if item.Kind != contractsv1.NotificationSuccess {
			t.Fatalf("expected success notifications, got %+v", item)
		}
	}
	if got := app.Metrics.Value("test_notifications_total", "kind=success"); got != 3 {
		t.Fatalf("expected 3 counted notifications, got %v", got)
	}
}

func TestBuildWithoutMetrics(t *testing.T) {
	app, err := Build(context.Background(), config.Config{ServiceName: "test"}, testSeed(t), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer app.Close()
	if app.Metrics != nil {
		t.Fatalf("expected no collector when metrics are disabled")
	}
}

func TestClockPinAndAdvance(t *testing.T) {
	clock := &Clock{}
	start := time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)
	clock.Pin(start)
	clock.Advance(24 * time.Hour)
	if !clock.Now().Equal(start.Add(24 * time.Hour)) {
		t.Fatalf("unexpected pinned time %v", clock.Now())
	}
}
