package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandbridge/contexts/campaign-editorial/submission-service/application"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

type SubmitProofCommand struct {
	TaskID       string
	RetailerID   string
	RetailerName string
	Tier         string
	Zone         string
	Comment      string
}

type SubmitProofUseCase struct {
	Tasks     ports.TaskRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

// Execute appends a pending submission to an active task.
func (uc SubmitProofUseCase) Execute(ctx context.Context, cmd SubmitProofCommand) (entities.Submission, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.Submission{}, err
	}
	task, err := uc.Tasks.GetTask(ctx, strings.TrimSpace(cmd.TaskID))
	if err != nil {
		return entities.Submission{}, err
	}
	if task.Status != entities.TaskStatusActive {
		return entities.Submission{}, domainerrors.ErrTaskNotActive
	}

	submissionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Submission{}, err
	}
	now := uc.Clock.Now().UTC()
	submission := entities.Submission{
		SubmissionID: submissionID,
		TaskID:       task.TaskID,
		RetailerID:   strings.TrimSpace(cmd.RetailerID),
		RetailerName: strings.TrimSpace(cmd.RetailerName),
		Tier:         strings.TrimSpace(cmd.Tier),
		Zone:         strings.TrimSpace(cmd.Zone),
		SubmittedAt:  now,
		Status:       entities.SubmissionStatusPending,
		Comment:      strings.TrimSpace(cmd.Comment),
	}
	if !submission.ValidateCreate() {
		return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
	}

	task.Submissions = append(append([]entities.Submission(nil), task.Submissions...), submission)
	task.CompletionRate = entities.CompletionPercent(task.Submissions)
	task.UpdatedAt = now
	if err := uc.Tasks.UpdateTask(ctx, task); err != nil {
		return entities.Submission{}, err
	}

	publishTaskEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"submission.created",
		task.TaskID,
		now,
		contractsv1.Notification{
			Message: "Proof submitted for \"" + task.Title + "\"",
			Kind:    contractsv1.NotificationSuccess,
		},
		map[string]any{
			"task_id":       task.TaskID,
			"submission_id": submission.SubmissionID,
			"retailer_id":   submission.RetailerID,
		},
	)

	logger.Info("submission created",
		"event", "submission_created",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", task.TaskID,
		"submission_id", submission.SubmissionID,
		"retailer_id", submission.RetailerID,
	)
	return submission, nil
}
