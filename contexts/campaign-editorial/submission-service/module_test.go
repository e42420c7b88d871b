package submissionservice_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	submissionservice "brandbridge/contexts/campaign-editorial/submission-service"
	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"
	viewtransport "brandbridge/contexts/campaign-editorial/submission-service/transport/view"
	contractsv1 "brandbridge/contracts/events/v1"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type recordingPublisher struct {
	events []ports.EventEnvelope
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if topic != contractsv1.TopicNotifications {
		return errors.New("unexpected topic " + topic)
	}
	p.events = append(p.events, event)
	return nil
}

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(context.Context, string, ports.EventEnvelope) error {
	p.calls++
	return errors.New("bus unavailable")
}

func seedTask() entities.Task {
	submitted := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	return entities.Task{
		TaskID:   "task-1",
		BrandID:  "brand-1",
		Title:    "Endcap display photo",
		Priority: entities.TaskPriorityHigh,
		Status:   entities.TaskStatusActive,
		Submissions: []entities.Submission{
			{SubmissionID: "sub-1", TaskID: "task-1", RetailerID: "r-1", RetailerName: "Corner Market", Status: entities.SubmissionStatusPending, SubmittedAt: submitted},
			{SubmissionID: "sub-2", TaskID: "task-1", RetailerID: "r-2", RetailerName: "Main St Grocer", Status: entities.SubmissionStatusPending, SubmittedAt: submitted.Add(time.Hour)},
		},
		CreatedAt: submitted.Add(-24 * time.Hour),
		UpdatedAt: submitted.Add(-24 * time.Hour),
	}
}

func newTestModule() (submissionservice.Module, *recordingPublisher) {
	publisher := &recordingPublisher{}
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	return submissionservice.NewInMemoryModule([]entities.Task{seedTask()}, clock, publisher, nil), publisher
}

func TestRejectThenApproveFlow(t *testing.T) {
	module, publisher := newTestModule()
	ctx := context.Background()

	rejected, err := module.Handler.RejectSubmissionHandler(ctx, "brand-1", "task-1", "sub-1", viewtransport.RejectSubmissionRequest{Reason: "bad lighting"})
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != string(entities.SubmissionStatusRejected) || rejected.CompletionRate != 0 {
		t.Fatalf("unexpected reject response: %+v", rejected)
	}
	task, err := module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Task.Submissions[0].RejectionReason != "bad lighting" {
		t.Fatalf("expected stored reason, got %q", task.Task.Submissions[0].RejectionReason)
	}

	approved, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "sub-1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != string(entities.SubmissionStatusApproved) || approved.CompletionRate != 50 {
		t.Fatalf("unexpected approve response: %+v", approved)
	}
	task, err = module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Task.Submissions[0].RejectionReason != "" {
		t.Fatalf("expected reason cleared, got %q", task.Task.Submissions[0].RejectionReason)
	}
	if task.Task.CompletionRate != 50 {
		t.Fatalf("expected completion 50, got %d", task.Task.CompletionRate)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(publisher.events))
	}
	if publisher.events[0].Notification.Kind != contractsv1.NotificationInfo {
		t.Fatalf("expected info for rejection, got %s", publisher.events[0].Notification.Kind)
	}
	if publisher.events[1].Notification.Kind != contractsv1.NotificationSuccess {
		t.Fatalf("expected success for approval, got %s", publisher.events[1].Notification.Kind)
	}
}

func TestReapproveIsNoOp(t *testing.T) {
	module, publisher := newTestModule()
	ctx := context.Background()

	if _, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "sub-2"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	first, err := module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}

	again, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-2", "task-1", "sub-2")
	if err != nil {
		t.Fatalf("re-approve failed: %v", err)
	}
	if again.Changed {
		t.Fatalf("expected re-approve to be a no-op")
	}
	second, err := module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if second.Task.Submissions[1].ReviewedBy != first.Task.Submissions[1].ReviewedBy {
		t.Fatalf("expected reviewer unchanged, got %q", second.Task.Submissions[1].ReviewedBy)
	}
	if len(publisher.events) != 2 {
		t.Fatalf("expected one notification per call, got %d", len(publisher.events))
	}
	if publisher.events[1].Notification.Kind != contractsv1.NotificationInfo {
		t.Fatalf("expected info notification for no-op, got %s", publisher.events[1].Notification.Kind)
	}
}

func TestRejectWithoutReasonLeavesStatus(t *testing.T) {
	module, publisher := newTestModule()
	ctx := context.Background()

	_, err := module.Handler.RejectSubmissionHandler(ctx, "brand-1", "task-1", "sub-1", viewtransport.RejectSubmissionRequest{Reason: "  "})
	if !errors.Is(err, domainerrors.ErrRejectionReasonRequired) || !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	task, err := module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Task.Submissions[0].Status != string(entities.SubmissionStatusPending) {
		t.Fatalf("expected pending status, got %s", task.Task.Submissions[0].Status)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no notification, got %d", len(publisher.events))
	}
}

func TestReviewUnknownIDs(t *testing.T) {
	module, _ := newTestModule()
	ctx := context.Background()

	if _, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "missing"); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found for submission, got %v", err)
	}
	if _, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "missing", "sub-1"); !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected task not found, got %v", err)
	}
}

func TestSubmitProofAndEndTask(t *testing.T) {
	module, publisher := newTestModule()
	ctx := context.Background()

	item, err := module.Handler.SubmitProofHandler(ctx, "task-1", viewtransport.SubmitProofRequest{
		RetailerID:   "r-3",
		RetailerName: "Harbor Foods",
		Tier:         "gold",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if item.Status != string(entities.SubmissionStatusPending) {
		t.Fatalf("expected pending submission, got %s", item.Status)
	}

	list, err := module.Handler.ListSubmissionsHandler(ctx, "task-1", "pending")
	if err != nil {
		t.Fatalf("list submissions failed: %v", err)
	}
	if len(list.Items) != 3 || list.Items[0].SubmissionID != item.SubmissionID {
		t.Fatalf("expected newest submission first, got %+v", list.Items)
	}

	if _, err := module.Handler.EndTaskHandler(ctx, "task-1"); err != nil {
		t.Fatalf("end task failed: %v", err)
	}
	_, err = module.Handler.SubmitProofHandler(ctx, "task-1", viewtransport.SubmitProofRequest{RetailerID: "r-4", RetailerName: "Late Shop"})
	if !errors.Is(err, domainerrors.ErrTaskNotActive) {
		t.Fatalf("expected task not active, got %v", err)
	}
	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(publisher.events))
	}
}

func TestBulkReviewAndSummary(t *testing.T) {
	module, publisher := newTestModule()
	ctx := context.Background()

	result, err := module.Handler.BulkReviewHandler(ctx, "brand-1", "task-1", viewtransport.BulkReviewRequest{
		Decision:      "approve",
		SubmissionIDs: []string{"sub-1", "sub-2", "sub-1", "missing"},
	})
	if err != nil {
		t.Fatalf("bulk review failed: %v", err)
	}
	if result.Processed != 3 || result.SucceededCount != 2 || result.FailedCount != 1 {
		t.Fatalf("unexpected bulk result: %+v", result)
	}
	if _, ok := result.Failures["missing"]; !ok {
		t.Fatalf("expected failure for missing submission")
	}
	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(publisher.events))
	}

	summary, err := module.Handler.ReviewSummaryHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Total != 2 || summary.Approved != 2 || summary.CompletionRate != 100 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	_, err = module.Handler.BulkReviewHandler(ctx, "brand-1", "task-1", viewtransport.BulkReviewRequest{
		Decision:      "reject",
		SubmissionIDs: []string{"sub-1"},
	})
	if !errors.Is(err, domainerrors.ErrRejectionReasonRequired) {
		t.Fatalf("expected reason required, got %v", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	module, _ := newTestModule()
	ctx := context.Background()

	created, err := module.Handler.CreateTaskHandler(ctx, "brand-1", viewtransport.CreateTaskRequest{
		Title:    "Window cling check",
		Deadline: "2025-12-01",
	})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if created.Task.Priority != string(entities.TaskPriorityNormal) || created.Task.Status != string(entities.TaskStatusActive) {
		t.Fatalf("unexpected defaults: %+v", created.Task)
	}
	if created.Task.Deadline != "2025-12-01T00:00:00Z" {
		t.Fatalf("unexpected deadline %q", created.Task.Deadline)
	}

	if _, err := module.Handler.CreateTaskHandler(ctx, "brand-1", viewtransport.CreateTaskRequest{Title: "x", Priority: "urgent"}); !errors.Is(err, domainerrors.ErrInvalidTaskInput) {
		t.Fatalf("expected invalid priority error, got %v", err)
	}

	tasks, err := module.Handler.ListTasksHandler(ctx, "brand-1", "active")
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	if len(tasks.Items) != 2 || tasks.Items[0].TaskID != created.Task.TaskID {
		t.Fatalf("expected newest task first, got %d items", len(tasks.Items))
	}
}

func TestCancelledReviewLeavesSubmissionPending(t *testing.T) {
	module, publisher := newTestModule()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "sub-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	task, err := module.Handler.GetTaskHandler(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Task.Submissions[0].Status != string(entities.SubmissionStatusPending) {
		t.Fatalf("expected pending status, got %s", task.Task.Submissions[0].Status)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no notification, got %d", len(publisher.events))
	}
}

func TestReviewSurvivesPublishFailure(t *testing.T) {
	publisher := &failingPublisher{}
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	module := submissionservice.NewInMemoryModule([]entities.Task{seedTask()}, clock, publisher, nil)
	ctx := context.Background()

	outcome, err := module.Handler.ApproveSubmissionHandler(ctx, "brand-1", "task-1", "sub-1")
	if err != nil {
		t.Fatalf("expected approve to succeed despite publish failure, got %v", err)
	}
	if !outcome.Changed || outcome.Status != string(entities.SubmissionStatusApproved) {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	task, err := module.Handler.GetTaskHandler(ctx, "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Task.Submissions[0].Status != string(entities.SubmissionStatusApproved) {
		t.Fatalf("expected approved status to persist, got %s", task.Task.Submissions[0].Status)
	}
	if publisher.calls != 1 {
		t.Fatalf("expected one publish attempt, got %d", publisher.calls)
	}
}

func TestReviewOfUnknownTaskIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	clock := &fixedClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
	module := submissionservice.NewInMemoryModule([]entities.Task{seedTask()}, clock, &recordingPublisher{}, logger)

	_, err := module.Handler.RejectSubmissionHandler(context.Background(), "brand-1", "missing", "sub-1", viewtransport.RejectSubmissionRequest{Reason: "blurry"})
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(buf.String(), "submission_review_skipped") || !strings.Contains(buf.String(), "task_id=missing") {
		t.Fatalf("expected skipped review to be logged, got %q", buf.String())
	}
}
