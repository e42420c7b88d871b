package submissionservice

import (
	"log/slog"

	"brandbridge/contexts/campaign-editorial/submission-service/adapters/memory"
	uiadapter "brandbridge/contexts/campaign-editorial/submission-service/adapters/ui"
	"brandbridge/contexts/campaign-editorial/submission-service/application/commands"
	"brandbridge/contexts/campaign-editorial/submission-service/application/queries"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
)

type Module struct {
	Handler uiadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Tasks     ports.TaskRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	review := commands.ReviewSubmissionUseCase{
		Tasks:     deps.Tasks,
		Publisher: deps.Publisher,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: uiadapter.Handler{
			CreateTask: commands.CreateTaskUseCase{
				Tasks:     deps.Tasks,
				Publisher: deps.Publisher,
				Clock:     deps.Clock,
				IDGen:     deps.IDGen,
				Logger:    deps.Logger,
			},
			EndTask: commands.EndTaskUseCase{
				Tasks:     deps.Tasks,
				Publisher: deps.Publisher,
				Clock:     deps.Clock,
				IDGen:     deps.IDGen,
				Logger:    deps.Logger,
			},
			SubmitProof: commands.SubmitProofUseCase{
				Tasks:     deps.Tasks,
				Publisher: deps.Publisher,
				Clock:     deps.Clock,
				IDGen:     deps.IDGen,
				Logger:    deps.Logger,
			},
			Review: review,
			BulkReview: commands.BulkReviewUseCase{
				Review: review,
				Logger: deps.Logger,
			},
			Queries: queries.QueryUseCase{
				Tasks:  deps.Tasks,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against an in-memory store. A nil clock
// falls back to wall time and a nil publisher drops notifications.
func NewInMemoryModule(
	seed []entities.Task,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	if clock == nil {
		clock = store
	}
	module := NewModule(Dependencies{
		Tasks:     store,
		Publisher: publisher,
		Clock:     clock,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
