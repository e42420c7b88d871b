package campaignservice

import (
	"log/slog"

	"brandbridge/contexts/campaign-editorial/campaign-service/adapters/memory"
	uiadapter "brandbridge/contexts/campaign-editorial/campaign-service/adapters/ui"
	"brandbridge/contexts/campaign-editorial/campaign-service/application/commands"
	"brandbridge/contexts/campaign-editorial/campaign-service/application/queries"
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"
)

type Module struct {
	Handler uiadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	History     ports.HistoryRepository
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns:   deps.Campaigns,
		Publisher:   deps.Publisher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Publisher: deps.Publisher,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Publisher: deps.Publisher,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}

	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	listHistory := queries.ListHistoryUseCase{
		History: deps.History,
		Logger:  deps.Logger,
	}

	return Module{
		Handler: uiadapter.Handler{
			CreateCampaign: createCampaign,
			UpdateCampaign: updateCampaign,
			ChangeStatus:   changeStatus,
			GetCampaign:    getCampaign,
			ListCampaigns:  listCampaigns,
			ListHistory:    listHistory,
			Logger:         deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against an in-memory store. A nil clock
// falls back to wall time and a nil publisher drops notifications.
func NewInMemoryModule(
	seed []entities.Campaign,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	if clock == nil {
		clock = store
	}
	module := NewModule(Dependencies{
		Campaigns:   store,
		History:     store,
		Publisher:   publisher,
		Clock:       clock,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
