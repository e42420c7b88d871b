package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandbridge/contexts/campaign-editorial/submission-service/application"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
)

type BulkReviewCommand struct {
	TaskID        string
	ActorID       string
	Decision      entities.ReviewDecision
	SubmissionIDs []string
	Reason        string
}

type BulkReviewResult struct {
	Processed      int
	SucceededCount int
	FailedCount    int
	Failures       map[string]error
}

// BulkReviewUseCase applies one decision to many submissions. Each item goes
// through the single-item review, so each success notifies on its own.
type BulkReviewUseCase struct {
	Review ReviewSubmissionUseCase
	Logger *slog.Logger
}

func (uc BulkReviewUseCase) Execute(ctx context.Context, cmd BulkReviewCommand) (BulkReviewResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.Decision != entities.ReviewDecisionApprove && cmd.Decision != entities.ReviewDecisionReject {
		return BulkReviewResult{}, domainerrors.ErrInvalidReviewDecision
	}
	if cmd.Decision == entities.ReviewDecisionReject && strings.TrimSpace(cmd.Reason) == "" {
		return BulkReviewResult{}, domainerrors.ErrRejectionReasonRequired
	}
	ids := sanitizeIDs(cmd.SubmissionIDs)
	if len(ids) == 0 {
		return BulkReviewResult{}, domainerrors.ErrInvalidSubmissionInput
	}

	result := BulkReviewResult{Failures: make(map[string]error)}
	for _, submissionID := range ids {
		var opErr error
		switch cmd.Decision {
		case entities.ReviewDecisionApprove:
			_, opErr = uc.Review.Approve(ctx, ApproveSubmissionCommand{
				TaskID:       cmd.TaskID,
				SubmissionID: submissionID,
				ActorID:      cmd.ActorID,
			})
		case entities.ReviewDecisionReject:
			_, opErr = uc.Review.Reject(ctx, RejectSubmissionCommand{
				TaskID:       cmd.TaskID,
				SubmissionID: submissionID,
				ActorID:      cmd.ActorID,
				Reason:       cmd.Reason,
			})
		}
		result.Processed++
		if opErr != nil {
			result.FailedCount++
			result.Failures[submissionID] = opErr
			continue
		}
		result.SucceededCount++
	}

	logger.Info("submission bulk review completed",
		"event", "submission_bulk_review_completed",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", strings.TrimSpace(cmd.TaskID),
		"decision", string(cmd.Decision),
		"processed", result.Processed,
		"succeeded_count", result.SucceededCount,
		"failed_count", result.FailedCount,
	)
	return result, nil
}

func sanitizeIDs(ids []string) []string {
	items := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, item := range ids {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		items = append(items, v)
	}
	return items
}
