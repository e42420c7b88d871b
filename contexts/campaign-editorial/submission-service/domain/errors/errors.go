package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrTaskNotFound            = fmt.Errorf("task not found: %w", ErrNotFound)
	ErrSubmissionNotFound      = fmt.Errorf("submission not found: %w", ErrNotFound)
	ErrInvalidTaskInput        = fmt.Errorf("invalid task input: %w", ErrValidation)
	ErrInvalidSubmissionInput  = fmt.Errorf("invalid submission input: %w", ErrValidation)
	ErrRejectionReasonRequired = fmt.Errorf("rejection reason is required: %w", ErrValidation)
	ErrInvalidStatusTransition = fmt.Errorf("invalid submission status transition: %w", ErrValidation)
	ErrInvalidReviewDecision   = fmt.Errorf("invalid review decision: %w", ErrValidation)
	ErrTaskNotActive           = fmt.Errorf("task is not accepting submissions: %w", ErrValidation)
	ErrTaskAlreadyExists       = fmt.Errorf("task already exists: %w", ErrValidation)
	ErrDuplicateSubmissionID   = fmt.Errorf("duplicate submission id: %w", ErrInvariantViolation)
)
