package ports

import (
	"context"
	"time"

	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	contractsv1 "brandbridge/contracts/events/v1"
)

type TaskFilter struct {
	BrandID string
	Status  entities.TaskStatus
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task entities.Task) error
	UpdateTask(ctx context.Context, task entities.Task) error
	GetTask(ctx context.Context, taskID string) (entities.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
