package engagementledger

import (
	"log/slog"

	"brandbridge/contexts/asset-distribution/engagement-ledger/adapters/memory"
	uiadapter "brandbridge/contexts/asset-distribution/engagement-ledger/adapters/ui"
	"brandbridge/contexts/asset-distribution/engagement-ledger/application/commands"
	"brandbridge/contexts/asset-distribution/engagement-ledger/application/queries"
	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
	"brandbridge/contexts/asset-distribution/engagement-ledger/ports"
)

type Module struct {
	Handler uiadapter.Handler
	Ledger  *memory.Ledger
}

type Dependencies struct {
	Ledger    ports.Ledger
	Files     ports.FileRegistry
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: uiadapter.Handler{
			RecordDownload: commands.RecordDownloadUseCase{
				Ledger:    deps.Ledger,
				Publisher: deps.Publisher,
				Clock:     deps.Clock,
				IDGen:     deps.IDGen,
				Logger:    deps.Logger,
			},
			MarkFreshness: commands.MarkFreshnessUseCase{
				Ledger:    deps.Ledger,
				Publisher: deps.Publisher,
				Clock:     deps.Clock,
				IDGen:     deps.IDGen,
				Logger:    deps.Logger,
			},
			ListDownloads: queries.ListDownloadsUseCase{
				Ledger: deps.Ledger,
				Files:  deps.Files,
				Logger: deps.Logger,
			},
			GetDownload: queries.GetDownloadUseCase{
				Ledger: deps.Ledger,
				Files:  deps.Files,
				Logger: deps.Logger,
			},
			CanRecord: queries.CanRecordUseCase{Ledger: deps.Ledger},
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against an in-memory ledger. files may be
// any registry; nil means every file resolves as unknown.
func NewInMemoryModule(
	seed []entities.DownloadLogEntry,
	files ports.FileRegistry,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) Module {
	ledger := memory.NewLedger(seed, logger)
	if clock == nil {
		clock = ledger
	}
	module := NewModule(Dependencies{
		Ledger:    ledger,
		Files:     files,
		Publisher: publisher,
		Clock:     clock,
		IDGen:     ledger,
		Logger:    logger,
	})
	module.Ledger = ledger
	return module
}
