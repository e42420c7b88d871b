package entities

import (
	"math"
	"strings"
	"time"
)

type TaskPriority string

const (
	TaskPriorityNormal   TaskPriority = "normal"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

type TaskStatus string

const (
	TaskStatusActive TaskStatus = "active"
	TaskStatusEnded  TaskStatus = "ended"
)

type Task struct {
	TaskID         string
	BrandID        string
	Title          string
	Description    string
	Priority       TaskPriority
	Deadline       *time.Time
	Audience       string
	Status         TaskStatus
	CompletionRate int
	Submissions    []Submission
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Task) ValidateCreate() bool {
	return strings.TrimSpace(t.TaskID) != "" &&
		strings.TrimSpace(t.BrandID) != "" &&
		strings.TrimSpace(t.Title) != "" &&
		IsSupportedPriority(t.Priority)
}

func IsSupportedPriority(value TaskPriority) bool {
	switch value {
	case TaskPriorityNormal, TaskPriorityHigh, TaskPriorityCritical:
		return true
	default:
		return false
	}
}

// SubmissionIndex returns the position of the submission inside the task, or
// -1 when it does not belong to it.
func (t Task) SubmissionIndex(submissionID string) int {
	submissionID = strings.TrimSpace(submissionID)
	for i, item := range t.Submissions {
		if item.SubmissionID == submissionID {
			return i
		}
	}
	return -1
}

// CompletionPercent is approved/total as a rounded integer percentage.
func CompletionPercent(submissions []Submission) int {
	if len(submissions) == 0 {
		return 0
	}
	approved := 0
	for _, item := range submissions {
		if item.Status == SubmissionStatusApproved {
			approved++
		}
	}
	return int(math.Round(float64(approved) * 100 / float64(len(submissions))))
}
