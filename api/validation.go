// Package api provides validation utilities for API request handling.
package api

import (
	"strings"
	"unicode/utf8"

	"github.com/gcbaptista/go-textrank/config"
	"github.com/gcbaptista/go-textrank/model"
)

const maxLabelLength = 256

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateAnalyzeRequest checks the structure of an analysis request. Value
// ranges of the settings are checked by the engine, which reports them as
// configuration errors.
func ValidateAnalyzeRequest(req *AnalyzeRequestBody) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req == nil {
		result.AddError("body", "Request body is required")
		return result
	}

	if strings.TrimSpace(req.Text) == "" {
		result.AddError("text", "Text is required and cannot be empty or whitespace-only")
	} else if !utf8.ValidString(req.Text) {
		result.AddError("text", "Text must be valid UTF-8")
	}

	if utf8.RuneCountInString(req.Label) > maxLabelLength {
		result.AddError("label", "Label cannot be longer than 256 characters")
	}

	if req.Type != "" && !isAnalysisJobType(model.JobType(req.Type)) {
		result.AddError("type", "Type must be one of analyze, extract_keywords, extract_sentences")
	}

	if s := req.Settings; s != nil {
		validateView(result, "settings.vertex_source", s.VertexSource)
		validateView(result, "settings.edge_source", s.EdgeSource)
		validateView(result, "settings.sentence_source", s.SentenceSource)
	}

	return result
}

// ValidateJobStatus validates the status filter of a job listing
func ValidateJobStatus(status string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	switch model.JobStatus(status) {
	case "", model.JobStatusPending, model.JobStatusRunning, model.JobStatusCompleted,
		model.JobStatusFailed, model.JobStatusCancelling, model.JobStatusCancelled:
	default:
		result.AddError("status", "Unknown job status '"+status+"'")
	}

	return result
}

func validateView(result *ValidationResult, field string, value *string) {
	if value == nil {
		return
	}
	if _, err := config.ParseView(field, *value, config.ViewNoFilter); err != nil {
		result.AddError(field, "Must be one of no_filter, no_stop_words, all_filters")
	}
}

func isAnalysisJobType(jobType model.JobType) bool {
	switch jobType {
	case model.JobTypeAnalyze, model.JobTypeExtractKeywords, model.JobTypeExtractSentences:
		return true
	}
	return false
}
