package view

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
	Audience    string `json:"audience"`
}

type SubmitProofRequest struct {
	RetailerID   string `json:"retailer_id"`
	RetailerName string `json:"retailer_name"`
	Tier         string `json:"tier"`
	Zone         string `json:"zone"`
	Comment      string `json:"comment"`
}

type RejectSubmissionRequest struct {
	Reason string `json:"reason"`
}

type BulkReviewRequest struct {
	Decision      string   `json:"decision"`
	SubmissionIDs []string `json:"submission_ids"`
	Reason        string   `json:"reason,omitempty"`
}

type SubmissionDTO struct {
	SubmissionID    string `json:"submission_id"`
	TaskID          string `json:"task_id"`
	RetailerID      string `json:"retailer_id"`
	RetailerName    string `json:"retailer_name"`
	Tier            string `json:"tier"`
	Zone            string `json:"zone"`
	Status          string `json:"status"`
	Comment         string `json:"comment,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
	ReviewedAt      string `json:"reviewed_at,omitempty"`
	ReviewedBy      string `json:"reviewed_by,omitempty"`
}

type TaskDTO struct {
	TaskID         string          `json:"task_id"`
	BrandID        string          `json:"brand_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Priority       string          `json:"priority"`
	Deadline       string          `json:"deadline,omitempty"`
	Audience       string          `json:"audience"`
	Status         string          `json:"status"`
	CompletionRate int             `json:"completion_rate"`
	Submissions    []SubmissionDTO `json:"submissions"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type TaskResponse struct {
	Task TaskDTO `json:"task"`
}

type ListTasksResponse struct {
	Items []TaskDTO `json:"items"`
}

type ListSubmissionsResponse struct {
	Items []SubmissionDTO `json:"items"`
}

type ReviewResponse struct {
	TaskID         string `json:"task_id"`
	SubmissionID   string `json:"submission_id"`
	FromStatus     string `json:"from_status"`
	Status         string `json:"status"`
	Changed        bool   `json:"changed"`
	CompletionRate int    `json:"completion_rate"`
}

type BulkReviewResponse struct {
	Processed      int               `json:"processed"`
	SucceededCount int               `json:"succeeded_count"`
	FailedCount    int               `json:"failed_count"`
	Failures       map[string]string `json:"failures,omitempty"`
}

type ReviewSummaryResponse struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Approved       int `json:"approved"`
	Rejected       int `json:"rejected"`
	CompletionRate int `json:"completion_rate"`
}
