package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "brandbridge/contexts/campaign-editorial/submission-service/application"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

type CreateTaskCommand struct {
	BrandID     string
	Title       string
	Description string
	Priority    string
	Deadline    *time.Time
	Audience    string
}

type CreateTaskUseCase struct {
	Tasks     ports.TaskRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Task{}, err
	}
	taskID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	priority := entities.TaskPriority(strings.ToLower(strings.TrimSpace(cmd.Priority)))
	if priority == "" {
		priority = entities.TaskPriorityNormal
	}

	now := uc.Clock.Now().UTC()
	task := entities.Task{
		TaskID:      taskID,
		BrandID:     strings.TrimSpace(cmd.BrandID),
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		Priority:    priority,
		Deadline:    cmd.Deadline,
		Audience:    strings.TrimSpace(cmd.Audience),
		Status:      entities.TaskStatusActive,
		Submissions: []entities.Submission{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !task.ValidateCreate() {
		return entities.Task{}, domainerrors.ErrInvalidTaskInput
	}
	if err := uc.Tasks.CreateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}

	publishTaskEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"task.created",
		task.TaskID,
		now,
		contractsv1.Notification{
			Message: "Task \"" + task.Title + "\" sent to " + audienceLabel(task.Audience),
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"task_id":  task.TaskID,
			"brand_id": task.BrandID,
			"priority": string(task.Priority),
		},
	)

	logger.Info("task created",
		"event", "task_created",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", task.TaskID,
		"brand_id", task.BrandID,
	)
	return task, nil
}

func audienceLabel(audience string) string {
	if audience == "" {
		return "all retailers"
	}
	return audience
}

type EndTaskUseCase struct {
	Tasks     ports.TaskRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

// Execute closes the task to new submissions. Ending an ended task is a no-op.
func (uc EndTaskUseCase) Execute(ctx context.Context, taskID string) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Task{}, err
	}
	task, err := uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		return entities.Task{}, err
	}
	if task.Status == entities.TaskStatusEnded {
		return task, nil
	}

	now := uc.Clock.Now().UTC()
	task.Status = entities.TaskStatusEnded
	task.UpdatedAt = now
	if err := uc.Tasks.UpdateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}

	publishTaskEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"task.ended",
		task.TaskID,
		now,
		contractsv1.Notification{
			Message: "Task \"" + task.Title + "\" ended",
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"task_id":         task.TaskID,
			"completion_rate": task.CompletionRate,
		},
	)

	logger.Info("task ended",
		"event", "task_ended",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", task.TaskID,
		"completion_rate", task.CompletionRate,
	)
	return task, nil
}
