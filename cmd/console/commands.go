package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ledgerview "brandbridge/contexts/asset-distribution/engagement-ledger/transport/view"
	campaignview "brandbridge/contexts/campaign-editorial/campaign-service/transport/view"
	submissionview "brandbridge/contexts/campaign-editorial/submission-service/transport/view"
	contractsv1 "brandbridge/contracts/events/v1"
	"brandbridge/internal/app/bootstrap"
)

var errUsage = errors.New("usage")

var commandHelp = [][2]string{
	{"campaigns [status] [phase]", "list campaigns with phase and badges"},
	{"campaign <id>", "show a campaign and its publish checklist"},
	{"create-campaign <title>", "create a draft for --brand"},
	{"set <id> <field> <value>", "edit title, start, end, audience, cover, assets, templates, pinned"},
	{"publish|end|reactivate <id> [reason]", "change campaign status"},
	{"maintenance|resume|archive <id> [reason]", "change campaign status"},
	{"history <id>", "show status history"},
	{"tasks [status]", "list tasks"},
	{"task <id>", "show a task and its submissions"},
	{"create-task <title> [priority] [deadline]", "create a task for --brand"},
	{"end-task <id>", "close a task to new submissions"},
	{"submit <task> <retailer-id> <retailer-name> [zone]", "submit proof for a task"},
	{"approve <task> <submission>", "approve a submission"},
	{"reject <task> <submission> <reason>", "reject a submission"},
	{"bulk-approve <task> <id,id,...>", "approve several submissions"},
	{"bulk-reject <task> <reason> <id,id,...>", "reject several submissions"},
	{"summary <task>", "review counts for a task"},
	{"downloads [source-type]", "list the download ledger"},
	{"download <file>", "show one ledger entry with its log"},
	{"record <file> <campaign|resource> <source-title>", "record a download"},
	{"can-record <file>", "report whether a file may be downloaded"},
	{"mark-update <file>", "flag a newer source version"},
	{"mark-deleted <file>", "flag the source as removed"},
	{"metrics", "show event and notification counters"},
	{"advance <duration>", "move the pinned clock forward"},
	{"now", "print the session clock"},
}

type session struct {
	app    *bootstrap.App
	actor  string
	brand  string
	out    io.Writer
	styles styles
}

// exec runs one command. Failures are reported the way the dashboard shows
// them: as an error notification.
func (s *session) exec(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}
	if err := s.dispatch(ctx, args[0], args[1:]); err != nil {
		s.app.Notifications.Notify(err.Error(), contractsv1.NotificationError)
	}
	s.styles.renderNotifications(s.out, s.app.Notifications.Drain())
}

func (s *session) dispatch(ctx context.Context, name string, args []string) error {
	campaigns := s.app.Campaigns.Handler
	tasks := s.app.Submissions.Handler
	ledger := s.app.Ledger.Handler

	switch name {
	case "campaigns":
		resp, err := campaigns.ListCampaignsHandler(ctx, s.brand, arg(args, 0), arg(args, 1))
		if err != nil {
			return err
		}
		for _, item := range resp.Items {
			s.styles.renderCampaign(s.out, item)
		}
		return nil
	case "campaign":
		if len(args) < 1 {
			return usage("campaign <id>")
		}
		resp, err := campaigns.GetCampaignHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderCampaign(s.out, resp.Campaign)
		s.styles.renderReadiness(s.out, resp.Campaign.Readiness)
		return nil
	case "create-campaign":
		if len(args) < 1 {
			return usage("create-campaign <title>")
		}
		resp, err := campaigns.CreateCampaignHandler(ctx, s.brand, campaignview.CreateCampaignRequest{
			Title: strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		s.styles.renderCampaign(s.out, resp.Campaign)
		return nil
	case "set":
		if len(args) < 3 {
			return usage("set <id> <field> <value>")
		}
		req, err := updateRequest(args[1], strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		resp, err := campaigns.UpdateCampaignHandler(ctx, args[0], req)
		if err != nil {
			return err
		}
		s.styles.renderCampaign(s.out, resp.Campaign)
		return nil
	case "publish", "end", "reactivate", "maintenance", "resume", "archive":
		if len(args) < 1 {
			return usage(name + " <id> [reason]")
		}
		req := campaignview.StatusActionRequest{Reason: strings.Join(args[1:], " ")}
		actions := map[string]func(context.Context, string, string, campaignview.StatusActionRequest) (campaignview.CampaignResponse, error){
			"publish":     campaigns.PublishCampaignHandler,
			"end":         campaigns.EndCampaignHandler,
			"reactivate":  campaigns.ReactivateCampaignHandler,
			"maintenance": campaigns.StartMaintenanceHandler,
			"resume":      campaigns.FinishMaintenanceHandler,
			"archive":     campaigns.ArchiveCampaignHandler,
		}
		resp, err := actions[name](ctx, s.actor, args[0], req)
		if err != nil {
			return err
		}
		s.styles.renderCampaign(s.out, resp.Campaign)
		return nil
	case "history":
		if len(args) < 1 {
			return usage("history <id>")
		}
		resp, err := campaigns.CampaignHistoryHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderHistory(s.out, resp.Items)
		return nil

	case "tasks":
		resp, err := tasks.ListTasksHandler(ctx, s.brand, arg(args, 0))
		if err != nil {
			return err
		}
		for _, item := range resp.Items {
			s.styles.renderTask(s.out, item)
		}
		return nil
	case "task":
		if len(args) < 1 {
			return usage("task <id>")
		}
		resp, err := tasks.GetTaskHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderTask(s.out, resp.Task)
		for _, item := range resp.Task.Submissions {
			s.styles.renderSubmission(s.out, item)
		}
		return nil
	case "create-task":
		if len(args) < 1 {
			return usage("create-task <title> [priority] [deadline]")
		}
		resp, err := tasks.CreateTaskHandler(ctx, s.brand, submissionview.CreateTaskRequest{
			Title:    args[0],
			Priority: arg(args, 1),
			Deadline: arg(args, 2),
		})
		if err != nil {
			return err
		}
		s.styles.renderTask(s.out, resp.Task)
		return nil
	case "end-task":
		if len(args) < 1 {
			return usage("end-task <id>")
		}
		resp, err := tasks.EndTaskHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderTask(s.out, resp.Task)
		return nil
	case "submit":
		if len(args) < 3 {
			return usage("submit <task> <retailer-id> <retailer-name> [zone]")
		}
		_, err := tasks.SubmitProofHandler(ctx, args[0], submissionview.SubmitProofRequest{
			RetailerID:   args[1],
			RetailerName: args[2],
			Zone:         arg(args, 3),
		})
		return err
	case "approve":
		if len(args) < 2 {
			return usage("approve <task> <submission>")
		}
		resp, err := tasks.ApproveSubmissionHandler(ctx, s.actor, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s: %s -> %s, task %d%% complete\n", resp.SubmissionID, resp.FromStatus, resp.Status, resp.CompletionRate)
		return nil
	case "reject":
		if len(args) < 3 {
			return usage("reject <task> <submission> <reason>")
		}
		resp, err := tasks.RejectSubmissionHandler(ctx, s.actor, args[0], args[1], submissionview.RejectSubmissionRequest{
			Reason: strings.Join(args[2:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s: %s -> %s, task %d%% complete\n", resp.SubmissionID, resp.FromStatus, resp.Status, resp.CompletionRate)
		return nil
	case "bulk-approve", "bulk-reject":
		req := submissionview.BulkReviewRequest{Decision: "approve"}
		var taskID, ids string
		switch {
		case name == "bulk-approve" && len(args) >= 2:
			taskID, ids = args[0], args[1]
		case name == "bulk-reject" && len(args) >= 3:
			req.Decision = "reject"
			taskID, req.Reason, ids = args[0], args[1], args[2]
		default:
			return usage(name + " <task> ...")
		}
		req.SubmissionIDs = strings.Split(ids, ",")
		resp, err := tasks.BulkReviewHandler(ctx, s.actor, taskID, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d processed, %d succeeded, %d failed\n", resp.Processed, resp.SucceededCount, resp.FailedCount)
		for id, reason := range resp.Failures {
			fmt.Fprintf(s.out, "    %s: %s\n", id, reason)
		}
		return nil
	case "summary":
		if len(args) < 1 {
			return usage("summary <task>")
		}
		resp, err := tasks.ReviewSummaryHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderSummary(s.out, resp)
		return nil

	case "downloads":
		resp, err := ledger.ListDownloadsHandler(ctx, s.brand, arg(args, 0))
		if err != nil {
			return err
		}
		now := s.app.Clock.Now()
		for _, item := range resp.Items {
			s.styles.renderDownload(s.out, item, now)
		}
		return nil
	case "download":
		if len(args) < 1 {
			return usage("download <file>")
		}
		resp, err := ledger.GetDownloadHandler(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderDownload(s.out, resp.Download, s.app.Clock.Now())
		s.styles.renderLogs(s.out, resp.Download.Logs)
		return nil
	case "record":
		if len(args) < 3 {
			return usage("record <file> <campaign|resource> <source-title>")
		}
		resp, err := ledger.RecordDownloadHandler(ctx, s.actor, ledgerview.RecordDownloadRequest{
			FileID:      args[0],
			BrandID:     s.brand,
			SourceType:  args[1],
			SourceTitle: strings.Join(args[2:], " "),
		})
		if err != nil {
			return err
		}
		s.styles.renderDownload(s.out, resp.Download, s.app.Clock.Now())
		return nil
	case "can-record":
		if len(args) < 1 {
			return usage("can-record <file>")
		}
		resp, err := ledger.CanRecordHandler(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s: %t\n", resp.FileID, resp.CanRecord)
		return nil
	case "mark-update", "mark-deleted":
		if len(args) < 1 {
			return usage(name + " <file>")
		}
		mark := ledger.MarkUpdateAvailableHandler
		if name == "mark-deleted" {
			mark = ledger.MarkSourceDeletedHandler
		}
		resp, err := mark(ctx, args[0])
		if err != nil {
			return err
		}
		s.styles.renderDownload(s.out, resp.Download, s.app.Clock.Now())
		return nil

	case "metrics":
		if s.app.Metrics == nil {
			return errors.New("metrics are disabled")
		}
		samples, err := s.app.Metrics.Snapshot()
		if err != nil {
			return err
		}
		for _, sample := range samples {
			fmt.Fprintf(s.out, "%s{%s} %g\n", sample.Name, sample.Labels, sample.Value)
		}
		return nil

	case "advance":
		if len(args) < 1 {
			return usage("advance <duration>")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		s.app.Clock.Advance(d)
		fmt.Fprintln(s.out, s.app.Clock.Now().Format(time.RFC3339))
		return nil
	case "now":
		fmt.Fprintln(s.out, s.app.Clock.Now().Format(time.RFC3339))
		return nil
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func updateRequest(field string, value string) (campaignview.UpdateCampaignRequest, error) {
	var req campaignview.UpdateCampaignRequest
	switch field {
	case "title":
		req.Title = &value
	case "start":
		req.StartDate = &value
	case "end":
		req.EndDate = &value
	case "audience":
		req.Audience = &value
	case "cover":
		req.CoverImage = &value
	case "assets", "templates":
		refs := []string{}
		for _, ref := range strings.Split(value, ",") {
			if ref = strings.TrimSpace(ref); ref != "" {
				refs = append(refs, ref)
			}
		}
		if field == "assets" {
			req.AssetRefs = &refs
		} else {
			req.TemplateRefs = &refs
		}
	case "pinned":
		pinned := value == "true" || value == "yes"
		req.IsPinned = &pinned
	default:
		return req, fmt.Errorf("unknown field %q", field)
	}
	return req, nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func usage(form string) error {
	return fmt.Errorf("%w: %s", errUsage, form)
}
