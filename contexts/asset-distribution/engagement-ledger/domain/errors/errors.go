package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrEntryNotFound              = fmt.Errorf("download entry not found: %w", ErrNotFound)
	ErrInvalidDownloadInput       = fmt.Errorf("invalid download input: %w", ErrValidation)
	ErrInvalidListFilter          = fmt.Errorf("invalid list filter: %w", ErrValidation)
	ErrSourceDeleted              = fmt.Errorf("source file was deleted: %w", ErrValidation)
	ErrInvalidFreshnessTransition = fmt.Errorf("invalid freshness transition: %w", ErrValidation)
	ErrDuplicateFileID            = fmt.Errorf("duplicate ledger entry for file: %w", ErrInvariantViolation)
	ErrMergeFileMismatch          = fmt.Errorf("cannot merge entries of different files: %w", ErrInvariantViolation)
)
