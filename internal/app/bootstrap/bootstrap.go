package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	engagementledger "brandbridge/contexts/asset-distribution/engagement-ledger"
	ledgermemory "brandbridge/contexts/asset-distribution/engagement-ledger/adapters/memory"
	ledgerpostgres "brandbridge/contexts/asset-distribution/engagement-ledger/adapters/postgres"
	ledgerports "brandbridge/contexts/asset-distribution/engagement-ledger/ports"
	campaignservice "brandbridge/contexts/campaign-editorial/campaign-service"
	submissionservice "brandbridge/contexts/campaign-editorial/submission-service"
	"brandbridge/internal/app/fixture"
	"brandbridge/internal/platform/config"
	"brandbridge/internal/platform/db"
	"brandbridge/internal/platform/messaging"
	"brandbridge/internal/platform/metrics"
	"brandbridge/internal/platform/notify"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// App is one dashboard session: the three services sharing a clock and a
// notification bus.
type App struct {
	Campaigns     campaignservice.Module
	Submissions   submissionservice.Module
	Ledger        engagementledger.Module
	Files         *ledgermemory.FileRegistry
	Bus           *messaging.Bus
	Notifications *notify.Recorder
	Metrics       *metrics.Collector
	Clock         *Clock

	postgres *db.Postgres
	cancel   context.CancelFunc
	logger   *slog.Logger
}

// Clock is the session clock. A pinned clock never advances on its own.
type Clock struct {
	mu     sync.RWMutex
	pinned *time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pinned != nil {
		return *c.pinned
	}
	return time.Now().UTC()
}

func (c *Clock) Pin(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now = now.UTC()
	c.pinned = &now
}

// Advance moves a pinned clock forward. It does nothing on wall time.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned != nil {
		next := c.pinned.Add(d)
		c.pinned = &next
	}
}

// NewLogger builds the process logger from config.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", cfg.ServiceName)
}

func Build(ctx context.Context, cfg config.Config, seed fixture.Fixture, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default().With("service", cfg.ServiceName)
	}
	runCtx, cancel := context.WithCancel(ctx)

	clock := &Clock{}
	if seed.Now != nil {
		clock.Pin(*seed.Now)
	}

	bus := messaging.NewBus(logger)
	recorder := &notify.Recorder{}
	var sink notify.Sink = recorder
	if cfg.EnableNotificationLog {
		sink = notify.Fanout{recorder, notify.LogSink{Logger: logger}}
	}
	if err := (notify.Dispatcher{Sink: sink, Logger: logger}).Start(runCtx, bus); err != nil {
		cancel()
		return nil, err
	}

	var collector *metrics.Collector
	if cfg.EnableMetrics {
		collector = metrics.NewCollector(cfg.ServiceName)
		if err := collector.Start(runCtx, bus); err != nil {
			cancel()
			return nil, err
		}
	}

	app := &App{
		Bus:           bus,
		Notifications: recorder,
		Metrics:       collector,
		Clock:         clock,
		cancel:        cancel,
		logger:        logger,
	}

	app.Campaigns = campaignservice.NewInMemoryModule(seed.CampaignSeed(), clock, bus, logger)
	app.Submissions = submissionservice.NewInMemoryModule(seed.TaskSeed(), clock, bus, logger)

	app.Files = ledgermemory.NewFileRegistry(seed.FileSeed())
	var files ledgerports.FileRegistry = app.Files
	if cfg.UseCatalog() {
		pg, err := db.Connect(runCtx, cfg.PostgresDSN)
		if err != nil {
			cancel()
			return nil, err
		}
		app.postgres = pg
		files = ledgerpostgres.NewFileRegistry(pg.DB, logger)
	}
	app.Ledger = engagementledger.NewInMemoryModule(seed.DownloadSeed(), files, clock, bus, logger)

	logger.Info("session app built",
		"event", "bootstrap_session_built",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"campaigns", len(seed.Campaigns),
		"tasks", len(seed.Tasks),
		"downloads", len(seed.Downloads),
		"catalog", cfg.UseCatalog(),
	)
	return app, nil
}

func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}
