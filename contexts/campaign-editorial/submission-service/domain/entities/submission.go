package entities

import (
	"strings"
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

type Submission struct {
	SubmissionID    string
	TaskID          string
	RetailerID      string
	RetailerName    string
	Tier            string
	Zone            string
	SubmittedAt     time.Time
	Status          SubmissionStatus
	Comment         string
	RejectionReason string
	ReviewedAt      *time.Time
	ReviewedBy      string
}

func (s Submission) ValidateCreate() bool {
	return strings.TrimSpace(s.SubmissionID) != "" &&
		strings.TrimSpace(s.TaskID) != "" &&
		strings.TrimSpace(s.RetailerID) != "" &&
		strings.TrimSpace(s.RetailerName) != ""
}

func IsSupportedSubmissionStatus(value SubmissionStatus) bool {
	switch value {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	default:
		return false
	}
}
