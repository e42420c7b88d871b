package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	application "brandbridge/contexts/campaign-editorial/submission-service/application"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
)

type ListTasksQuery struct {
	BrandID string
	Status  string
}

type QueryUseCase struct {
	Tasks  ports.TaskRepository
	Logger *slog.Logger
}

func (uc QueryUseCase) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	return uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
}

func (uc QueryUseCase) ListTasks(ctx context.Context, query ListTasksQuery) ([]entities.Task, error) {
	filter := ports.TaskFilter{BrandID: strings.TrimSpace(query.BrandID)}
	if status := strings.TrimSpace(query.Status); status != "" {
		filter.Status = entities.TaskStatus(status)
		if filter.Status != entities.TaskStatusActive && filter.Status != entities.TaskStatusEnded {
			return nil, domainerrors.ErrInvalidTaskInput
		}
	}
	return uc.Tasks.ListTasks(ctx, filter)
}

// ListSubmissions returns the submissions of a task, newest first. An empty
// status returns all of them.
func (uc QueryUseCase) ListSubmissions(ctx context.Context, taskID string, status string) ([]entities.Submission, error) {
	task, err := uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		return nil, err
	}
	want := entities.SubmissionStatus(strings.TrimSpace(status))
	if want != "" && !entities.IsSupportedSubmissionStatus(want) {
		return nil, domainerrors.ErrInvalidSubmissionInput
	}

	items := make([]entities.Submission, 0, len(task.Submissions))
	for _, item := range task.Submissions {
		if want != "" && item.Status != want {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
	return items, nil
}

type ReviewSummary struct {
	Total          int
	Pending        int
	Approved       int
	Rejected       int
	CompletionRate int
}

func (uc QueryUseCase) TaskSummary(ctx context.Context, taskID string) (ReviewSummary, error) {
	task, err := uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		return ReviewSummary{}, err
	}
	summary := summarize(task.Submissions)
	application.ResolveLogger(uc.Logger).Debug("task review summary computed",
		"event", "task_review_summary_computed",
		"module", "campaign-editorial/submission-service",
		"layer", "application",
		"task_id", task.TaskID,
		"total", summary.Total,
	)
	return summary, nil
}

func summarize(items []entities.Submission) ReviewSummary {
	summary := ReviewSummary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case entities.SubmissionStatusPending:
			summary.Pending++
		case entities.SubmissionStatusApproved:
			summary.Approved++
		case entities.SubmissionStatusRejected:
			summary.Rejected++
		}
	}
	summary.CompletionRate = entities.CompletionPercent(items)
	return summary
}
