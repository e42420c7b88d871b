package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "brandbridge/contexts/campaign-editorial/submission-service/application"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
	contractsv1 "brandbridge/contracts/events/v1"
)

type ApproveSubmissionCommand struct {
	TaskID       string
	SubmissionID string
	ActorID      string
}

type RejectSubmissionCommand struct {
	TaskID       string
	SubmissionID string
	ActorID      string
	Reason       string
}

type ReviewSubmissionUseCase struct {
	Tasks     ports.TaskRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc ReviewSubmissionUseCase) Approve(ctx context.Context, cmd ApproveSubmissionCommand) (entities.ReviewOutcome, error) {
	return uc.review(ctx, cmd.TaskID, cmd.SubmissionID, entities.ReviewDecisionApprove, "", cmd.ActorID)
}

func (uc ReviewSubmissionUseCase) Reject(ctx context.Context, cmd RejectSubmissionCommand) (entities.ReviewOutcome, error) {
	return uc.review(ctx, cmd.TaskID, cmd.SubmissionID, entities.ReviewDecisionReject, cmd.Reason, cmd.ActorID)
}

func (uc ReviewSubmissionUseCase) review(
	ctx context.Context,
	taskID string,
	submissionID string,
	decision entities.ReviewDecision,
	reason string,
	actorID string,
) (entities.ReviewOutcome, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := ctx.Err(); err != nil {
		return entities.ReviewOutcome{}, err
	}
	task, err := uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		logger.Warn("submission review skipped",
			"event", "submission_review_skipped",
			"module", "campaign-editorial/submission-service",
			"layer", "application",
			"task_id", strings.TrimSpace(taskID),
			"submission_id", strings.TrimSpace(submissionID),
			"decision", string(decision),
			"error", err.Error(),
		)
		return entities.ReviewOutcome{}, err
	}

	now := uc.Clock.Now().UTC()
	updated, outcome, err := entities.ApplyReview(task, submissionID, decision, reason, actorID, now)
	if err != nil {
		logger.Warn("submission review refused",
			"event", "submission_review_refused",
			"module", "campaign-editorial/submission-service",
			"layer", "application",
			"task_id", task.TaskID,
			"submission_id", strings.TrimSpace(submissionID),
			"decision", string(decision),
			"error", err.Error(),
		)
		return entities.ReviewOutcome{}, err
	}
	if err := uc.Tasks.UpdateTask(ctx, updated); err != nil {
		return entities.ReviewOutcome{}, err
	}

	publishTaskEvent(ctx, logger, uc.Publisher, uc.IDGen,
		"submission."+string(outcome.To),
		outcome.TaskID,
		now,
		reviewNotification(outcome),
		map[string]any{
			"task_id":         outcome.TaskID,
			"submission_id":   outcome.SubmissionID,
			"from_status":     string(outcome.From),
			"to_status":       string(outcome.To),
			"changed":         outcome.Changed,
			"reason":          outcome.Reason,
			"completion_rate": outcome.CompletionRate,
		},
	)

	logger.Info("submission reviewed",
		"event", "submission_reviewed",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", outcome.TaskID,
		"submission_id", outcome.SubmissionID,
		"from_status", string(outcome.From),
		"to_status", string(outcome.To),
		"changed", outcome.Changed,
		"completion_rate", outcome.CompletionRate,
	)
	return outcome, nil
}

func reviewNotification(outcome entities.ReviewOutcome) contractsv1.Notification {
	if !outcome.Changed {
		return contractsv1.Notification{
			Message: fmt.Sprintf("Submission from %s is already %s", outcome.RetailerName, outcome.To),
			Kind:    contractsv1.NotificationInfo,
		}
	}
	if outcome.To == entities.SubmissionStatusRejected {
		return contractsv1.Notification{
			Message: fmt.Sprintf("Submission from %s rejected: %s", outcome.RetailerName, outcome.Reason),
			Kind:    contractsv1.NotificationInfo,
		}
	}
	return contractsv1.Notification{
		Message: fmt.Sprintf("Submission from %s approved", outcome.RetailerName),
		Kind:    contractsv1.NotificationSuccess,
	}
}
