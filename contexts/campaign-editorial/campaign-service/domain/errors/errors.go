package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every sentinel below wraps exactly one of them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrCampaignNotFound       = fmt.Errorf("campaign not found: %w", ErrNotFound)
	ErrInvalidCampaignInput   = fmt.Errorf("invalid campaign input: %w", ErrValidation)
	ErrCampaignAlreadyExists  = fmt.Errorf("campaign already exists: %w", ErrValidation)
	ErrCampaignNotEditable    = fmt.Errorf("campaign cannot be edited in current state: %w", ErrValidation)
	ErrInvalidStateTransition = fmt.Errorf("invalid campaign state transition: %w", ErrValidation)
	ErrCampaignNotReady       = fmt.Errorf("campaign is not ready to publish: %w", ErrValidation)
)

// ReadinessError reports the checklist items blocking a publish.
type ReadinessError struct {
	CampaignID string
	Missing    []string
}

func (e *ReadinessError) Error() string {
	return fmt.Sprintf("campaign %s is not ready to publish: missing %s", e.CampaignID, strings.Join(e.Missing, ", "))
}

func (e *ReadinessError) Unwrap() error {
	return ErrCampaignNotReady
}
