package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	ledgerview "brandbridge/contexts/asset-distribution/engagement-ledger/transport/view"
	campaignview "brandbridge/contexts/campaign-editorial/campaign-service/transport/view"
	submissionview "brandbridge/contexts/campaign-editorial/submission-service/transport/view"
	contractsv1 "brandbridge/contracts/events/v1"
	"brandbridge/internal/platform/notify"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	phases  map[string]lipgloss.Style
	notices map[contractsv1.NotificationKind]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		phases: map[string]lipgloss.Style{
			"scheduled":     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			"draft":         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			"active":        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			"expiring_soon": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			"ending_today":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("202")),
			"ended":         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			"expired":       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		notices: map[contractsv1.NotificationKind]lipgloss.Style{
			contractsv1.NotificationSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			contractsv1.NotificationInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			contractsv1.NotificationError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func (s styles) phase(value string) string {
	label := strings.ReplaceAll(value, "_", " ")
	if style, ok := s.phases[value]; ok {
		return style.Render(label)
	}
	return label
}

func (s styles) renderCampaign(w io.Writer, item campaignview.CampaignDTO) {
	line := fmt.Sprintf("%s  %s  [%s]", s.title.Render(item.Title), s.muted.Render(item.CampaignID), s.phase(item.Phase))
	if item.IsNew {
		line += " " + s.badge.Render("NEW")
	}
	if item.IsUpdated {
		line += " " + s.badge.Render("UPDATED")
	}
	if item.IsPinned {
		line += " " + s.muted.Render("pinned")
	}
	fmt.Fprintln(w, line)

	window := item.StartDate + " to " + item.EndDate
	if item.DaysLeft != nil {
		window += fmt.Sprintf(" (%d days left)", *item.DaysLeft)
	}
	fmt.Fprintf(w, "    status %s, %s, audience %s\n", item.Status, window, orDash(item.Audience))
	if !item.Readiness.IsReady && item.Status == "draft" {
		for _, check := range item.Readiness.Items {
			if !check.Done {
				fmt.Fprintf(w, "    %s %s\n", s.muted.Render("todo"), check.Label)
			}
		}
	}
}

func (s styles) renderReadiness(w io.Writer, readiness campaignview.ReadinessDTO) {
	for _, check := range readiness.Items {
		mark := "[ ]"
		if check.Done {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, check.Label)
	}
	if readiness.IsReady {
		fmt.Fprintln(w, s.notices[contractsv1.NotificationSuccess].Render("  ready to publish"))
	} else {
		fmt.Fprintln(w, s.muted.Render("  not ready"))
	}
}

func (s styles) renderHistory(w io.Writer, items []campaignview.StateHistoryDTO) {
	if len(items) == 0 {
		fmt.Fprintln(w, s.muted.Render("no status changes"))
		return
	}
	for _, item := range items {
		line := fmt.Sprintf("%s  %s -> %s by %s", item.CreatedAt, item.FromStatus, item.ToStatus, item.ChangedBy)
		if item.Reason != "" {
			line += ": " + item.Reason
		}
		fmt.Fprintln(w, line)
	}
}

func (s styles) renderTask(w io.Writer, task submissionview.TaskDTO) {
	fmt.Fprintf(w, "%s  %s  %s, %s priority, %d%% complete\n",
		s.title.Render(task.Title), s.muted.Render(task.TaskID), task.Status, task.Priority, task.CompletionRate)
	if task.Deadline != "" {
		fmt.Fprintf(w, "    due %s\n", task.Deadline)
	}
}

func (s styles) renderSubmission(w io.Writer, item submissionview.SubmissionDTO) {
	line := fmt.Sprintf("    %-10s %s (%s)  %s", item.Status, item.RetailerName, item.SubmissionID, s.muted.Render(item.Zone))
	if item.RejectionReason != "" {
		line += "  reason: " + item.RejectionReason
	}
	fmt.Fprintln(w, line)
}

func (s styles) renderSummary(w io.Writer, summary submissionview.ReviewSummaryResponse) {
	fmt.Fprintf(w, "%d submissions: %d pending, %d approved, %d rejected (%d%% complete)\n",
		summary.Total, summary.Pending, summary.Approved, summary.Rejected, summary.CompletionRate)
}

func (s styles) renderDownload(w io.Writer, item ledgerview.DownloadDTO, now time.Time) {
	when := item.DownloadedAt
	if parsed, err := time.Parse(time.RFC3339, item.DownloadedAt); err == nil {
		when = humanize.RelTime(parsed, now, "ago", "from now")
	}
	fmt.Fprintf(w, "%s  %s  %s, %s\n",
		s.title.Render(item.File.Name), s.muted.Render(item.FileID), item.File.Type, humanize.IBytes(uint64(max(item.File.SizeBytes, 0))))
	fmt.Fprintf(w, "    %s from %s %q, %s by %s, %s x%d\n",
		item.VersionDownloaded, item.SourceType, item.SourceTitle, when, item.DownloadedBy,
		strings.ReplaceAll(item.CurrentVersionStatus, "_", " "), item.Frequency)
	if !item.CanRecord {
		fmt.Fprintln(w, s.muted.Render("    source removed, downloads disabled"))
	}
}

func (s styles) renderLogs(w io.Writer, logs []ledgerview.LogEventDTO) {
	for _, log := range logs {
		fmt.Fprintf(w, "    %s  %-12s %s\n", log.Date, log.Status, log.UserName)
	}
}

func (s styles) renderNotifications(w io.Writer, items []notify.Notification) {
	for _, item := range items {
		style, ok := s.notices[item.Kind]
		if !ok {
			style = s.notices[contractsv1.NotificationInfo]
		}
		fmt.Fprintln(w, style.Render(fmt.Sprintf("» %s: %s", item.Kind, item.Message)))
	}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
