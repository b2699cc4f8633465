package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidConfiguration is returned when analysis or server settings are malformed
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrAnalysisCancelled is returned when an analysis is stopped through its context
	ErrAnalysisCancelled = errors.New("analysis cancelled")
)

// ConfigurationError represents a configuration error with context.
// It is the single error kind reported for malformed settings.
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid configuration for '%s' (value '%s'): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, value, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Message: message}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CancelledError wraps the context error that stopped an analysis
type CancelledError struct {
	Stage string
	Cause error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("analysis cancelled during %s: %v", e.Stage, e.Cause)
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrAnalysisCancelled
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

// NewCancelledError creates a new CancelledError
func NewCancelledError(stage string, cause error) *CancelledError {
	return &CancelledError{Stage: stage, Cause: cause}
}
