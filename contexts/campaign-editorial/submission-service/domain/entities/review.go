package entities

import (
	"strings"
	"time"

	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
)

type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "approve"
	ReviewDecisionReject  ReviewDecision = "reject"
)

// reviewTransitions lists the target statuses reachable from each status.
var reviewTransitions = map[SubmissionStatus]map[SubmissionStatus]bool{
	SubmissionStatusPending: {
		SubmissionStatusApproved: true,
		SubmissionStatusRejected: true,
	},
	SubmissionStatusApproved: {
		SubmissionStatusApproved: true,
	},
	SubmissionStatusRejected: {
		SubmissionStatusApproved: true,
		SubmissionStatusRejected: true,
	},
}

func CanTransition(from SubmissionStatus, to SubmissionStatus) bool {
	return reviewTransitions[from][to]
}

// ReviewOutcome describes one applied review decision. It carries everything
// needed to notify the reviewer without re-reading the task.
type ReviewOutcome struct {
	TaskID         string
	TaskTitle      string
	SubmissionID   string
	RetailerName   string
	Decision       ReviewDecision
	From           SubmissionStatus
	To             SubmissionStatus
	Reason         string
	Changed        bool
	CompletionRate int
}

// ApplyReview runs one decision against the task and returns the updated
// task. The input task is left untouched.
func ApplyReview(
	task Task,
	submissionID string,
	decision ReviewDecision,
	reason string,
	actorID string,
	now time.Time,
) (Task, ReviewOutcome, error) {
	index := task.SubmissionIndex(submissionID)
	if index < 0 {
		return Task{}, ReviewOutcome{}, domainerrors.ErrSubmissionNotFound
	}

	var target SubmissionStatus
	reason = strings.TrimSpace(reason)
	switch decision {
	case ReviewDecisionApprove:
		target = SubmissionStatusApproved
		reason = ""
	case ReviewDecisionReject:
		if reason == "" {
			return Task{}, ReviewOutcome{}, domainerrors.ErrRejectionReasonRequired
		}
		target = SubmissionStatusRejected
	default:
		return Task{}, ReviewOutcome{}, domainerrors.ErrInvalidReviewDecision
	}

	current := task.Submissions[index]
	if !CanTransition(current.Status, target) {
		return Task{}, ReviewOutcome{}, domainerrors.ErrInvalidStatusTransition
	}

	updated := task
	updated.Submissions = append([]Submission(nil), task.Submissions...)
	submission := updated.Submissions[index]
	changed := submission.Status != target || submission.RejectionReason != reason
	if changed {
		now = now.UTC()
		submission.Status = target
		submission.RejectionReason = reason
		submission.ReviewedAt = &now
		submission.ReviewedBy = strings.TrimSpace(actorID)
		updated.Submissions[index] = submission
		updated.UpdatedAt = now
	}
	updated.CompletionRate = CompletionPercent(updated.Submissions)

	return updated, ReviewOutcome{
		TaskID:         updated.TaskID,
		TaskTitle:      updated.Title,
		SubmissionID:   submission.SubmissionID,
		RetailerName:   submission.RetailerName,
		Decision:       decision,
		From:           current.Status,
		To:             target,
		Reason:         reason,
		Changed:        changed,
		CompletionRate: updated.CompletionRate,
	}, nil
}
