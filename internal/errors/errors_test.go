package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("vertex_source", "nouns", "must be one of no_filter, no_stop_words, all_filters")

	expectedMsg := "invalid configuration for 'vertex_source' (value 'nouns'): must be one of no_filter, no_stop_words, all_filters"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without value
	err2 := NewConfigurationError("damping", "", "must be in (0, 1]")

	expectedMsg2 := "invalid configuration for 'damping': must be in (0, 1]"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("Expected error to match ErrInvalidConfiguration sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrInvalidInput) {
		t.Error("Error should not match ErrInvalidInput")
	}
}

func TestJobNotFoundError(t *testing.T) {
	jobID := "job-456"
	err := NewJobNotFoundError(jobID)

	expectedMsg := "job with ID 'job-456' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrJobNotFound) {
		t.Error("Expected error to match ErrJobNotFound sentinel")
	}
}

func TestValidationError(t *testing.T) {
	// Test with field
	field := "text"
	message := "cannot be empty"
	err := NewValidationError(field, message)

	expectedMsg := "validation error for field 'text': cannot be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", message)

	expectedMsg2 := "validation error: cannot be empty"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
	if !errors.Is(err2, ErrInvalidInput) {
		t.Error("Expected error without field to match ErrInvalidInput sentinel")
	}
}

func TestCancelledError(t *testing.T) {
	err := NewCancelledError("sentence ranking", context.Canceled)

	expectedMsg := "analysis cancelled during sentence ranking: context canceled"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrAnalysisCancelled) {
		t.Error("Expected error to match ErrAnalysisCancelled sentinel")
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("Expected error to unwrap to context.Canceled")
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that our custom errors can be wrapped and unwrapped
	originalErr := NewConfigurationError("window", "abc", "must be an integer")
	wrappedErr := fmt.Errorf("failed to load config: %w", originalErr)

	// Should still be able to detect the original error
	if !errors.Is(wrappedErr, ErrInvalidConfiguration) {
		t.Error("Expected wrapped error to still match ErrInvalidConfiguration sentinel")
	}

	// Should be able to unwrap to get the original error
	var cfgErr *ConfigurationError
	if !errors.As(wrappedErr, &cfgErr) {
		t.Error("Expected to be able to unwrap to ConfigurationError")
	}

	if cfgErr.Field != "window" {
		t.Errorf("Expected field 'window', got '%s'", cfgErr.Field)
	}
}
