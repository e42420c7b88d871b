package uiadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brandbridge/contexts/campaign-editorial/submission-service/application/commands"
	"brandbridge/contexts/campaign-editorial/submission-service/application/queries"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	viewtransport "brandbridge/contexts/campaign-editorial/submission-service/transport/view"
)

type Handler struct {
	CreateTask  commands.CreateTaskUseCase
	EndTask     commands.EndTaskUseCase
	SubmitProof commands.SubmitProofUseCase
	Review      commands.ReviewSubmissionUseCase
	BulkReview  commands.BulkReviewUseCase
	Queries     queries.QueryUseCase
	Logger      *slog.Logger
}

func (h Handler) CreateTaskHandler(
	ctx context.Context,
	brandID string,
	req viewtransport.CreateTaskRequest,
) (viewtransport.TaskResponse, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return viewtransport.TaskResponse{}, err
	}
	task, err := h.CreateTask.Execute(ctx, commands.CreateTaskCommand{
		BrandID:     brandID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    deadline,
		Audience:    req.Audience,
	})
	if err != nil {
		return viewtransport.TaskResponse{}, err
	}
	return viewtransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) EndTaskHandler(ctx context.Context, taskID string) (viewtransport.TaskResponse, error) {
	task, err := h.EndTask.Execute(ctx, taskID)
	if err != nil {
		return viewtransport.TaskResponse{}, err
	}
	return viewtransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) GetTaskHandler(ctx context.Context, taskID string) (viewtransport.TaskResponse, error) {
	task, err := h.Queries.GetTask(ctx, taskID)
	if err != nil {
		return viewtransport.TaskResponse{}, err
	}
	return viewtransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) ListTasksHandler(ctx context.Context, brandID string, status string) (viewtransport.ListTasksResponse, error) {
	items, err := h.Queries.ListTasks(ctx, queries.ListTasksQuery{
		BrandID: brandID,
		Status:  status,
	})
	if err != nil {
		return viewtransport.ListTasksResponse{}, err
	}
	result := make([]viewtransport.TaskDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapTask(item))
	}
	return viewtransport.ListTasksResponse{Items: result}, nil
}

func (h Handler) SubmitProofHandler(
	ctx context.Context,
	taskID string,
	req viewtransport.SubmitProofRequest,
) (viewtransport.SubmissionDTO, error) {
	item, err := h.SubmitProof.Execute(ctx, commands.SubmitProofCommand{
		TaskID:       taskID,
		RetailerID:   req.RetailerID,
		RetailerName: req.RetailerName,
		Tier:         req.Tier,
		Zone:         req.Zone,
		Comment:      req.Comment,
	})
	if err != nil {
		return viewtransport.SubmissionDTO{}, err
	}
	return mapSubmission(item), nil
}

func (h Handler) ListSubmissionsHandler(
	ctx context.Context,
	taskID string,
	status string,
) (viewtransport.ListSubmissionsResponse, error) {
	items, err := h.Queries.ListSubmissions(ctx, taskID, status)
	if err != nil {
		return viewtransport.ListSubmissionsResponse{}, err
	}
	result := make([]viewtransport.SubmissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSubmission(item))
	}
	return viewtransport.ListSubmissionsResponse{Items: result}, nil
}

func (h Handler) ApproveSubmissionHandler(
	ctx context.Context,
	actorID string,
	taskID string,
	submissionID string,
) (viewtransport.ReviewResponse, error) {
	outcome, err := h.Review.Approve(ctx, commands.ApproveSubmissionCommand{
		TaskID:       taskID,
		SubmissionID: submissionID,
		ActorID:      actorID,
	})
	if err != nil {
		return viewtransport.ReviewResponse{}, err
	}
	return mapOutcome(outcome), nil
}

func (h Handler) RejectSubmissionHandler(
	ctx context.Context,
	actorID string,
	taskID string,
	submissionID string,
	req viewtransport.RejectSubmissionRequest,
) (viewtransport.ReviewResponse, error) {
	outcome, err := h.Review.Reject(ctx, commands.RejectSubmissionCommand{
		TaskID:       taskID,
		SubmissionID: submissionID,
		ActorID:      actorID,
		Reason:       req.Reason,
	})
	if err != nil {
		return viewtransport.ReviewResponse{}, err
	}
	return mapOutcome(outcome), nil
}

func (h Handler) BulkReviewHandler(
	ctx context.Context,
	actorID string,
	taskID string,
	req viewtransport.BulkReviewRequest,
) (viewtransport.BulkReviewResponse, error) {
	result, err := h.BulkReview.Execute(ctx, commands.BulkReviewCommand{
		TaskID:        taskID,
		ActorID:       actorID,
		Decision:      entities.ReviewDecision(strings.ToLower(strings.TrimSpace(req.Decision))),
		SubmissionIDs: req.SubmissionIDs,
		Reason:        req.Reason,
	})
	if err != nil {
		return viewtransport.BulkReviewResponse{}, err
	}
	resp := viewtransport.BulkReviewResponse{
		Processed:      result.Processed,
		SucceededCount: result.SucceededCount,
		FailedCount:    result.FailedCount,
	}
	if len(result.Failures) > 0 {
		resp.Failures = make(map[string]string, len(result.Failures))
		for id, failure := range result.Failures {
			resp.Failures[id] = failure.Error()
		}
	}
	return resp, nil
}

func (h Handler) ReviewSummaryHandler(ctx context.Context, taskID string) (viewtransport.ReviewSummaryResponse, error) {
	summary, err := h.Queries.TaskSummary(ctx, taskID)
	if err != nil {
		return viewtransport.ReviewSummaryResponse{}, err
	}
	return viewtransport.ReviewSummaryResponse{
		Total:          summary.Total,
		Pending:        summary.Pending,
		Approved:       summary.Approved,
		Rejected:       summary.Rejected,
		CompletionRate: summary.CompletionRate,
	}, nil
}

// parseDeadline accepts a calendar date or an RFC 3339 timestamp.
func parseDeadline(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			parsed = parsed.UTC()
			return &parsed, nil
		}
	}
	return nil, domainerrors.ErrInvalidTaskInput
}

func mapOutcome(outcome entities.ReviewOutcome) viewtransport.ReviewResponse {
	return viewtransport.ReviewResponse{
		TaskID:         outcome.TaskID,
		SubmissionID:   outcome.SubmissionID,
		FromStatus:     string(outcome.From),
		Status:         string(outcome.To),
		Changed:        outcome.Changed,
		CompletionRate: outcome.CompletionRate,
	}
}

func mapTask(task entities.Task) viewtransport.TaskDTO {
	dto := viewtransport.TaskDTO{
		TaskID:         task.TaskID,
		BrandID:        task.BrandID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       string(task.Priority),
		Audience:       task.Audience,
		Status:         string(task.Status),
		CompletionRate: task.CompletionRate,
		Submissions:    make([]viewtransport.SubmissionDTO, 0, len(task.Submissions)),
		CreatedAt:      task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if task.Deadline != nil {
		dto.Deadline = task.Deadline.UTC().Format(time.RFC3339)
	}
	for _, item := range task.Submissions {
		dto.Submissions = append(dto.Submissions, mapSubmission(item))
	}
	return dto
}

func mapSubmission(item entities.Submission) viewtransport.SubmissionDTO {
	dto := viewtransport.SubmissionDTO{
		SubmissionID:    item.SubmissionID,
		TaskID:          item.TaskID,
		RetailerID:      item.RetailerID,
		RetailerName:    item.RetailerName,
		Tier:            item.Tier,
		Zone:            item.Zone,
		Status:          string(item.Status),
		Comment:         item.Comment,
		RejectionReason: item.RejectionReason,
		SubmittedAt:     item.SubmittedAt.UTC().Format(time.RFC3339),
		ReviewedBy:      item.ReviewedBy,
	}
	if item.ReviewedAt != nil {
		dto.ReviewedAt = item.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
