package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gcbaptista/go-textrank/internal/jobs"
	"github.com/gcbaptista/go-textrank/model"
	"github.com/gcbaptista/go-textrank/services"
)

// AnalyzeAsync validates the request, registers a job and runs the analysis
// in the background. The result is attached to the job on completion.
func (e *Engine) AnalyzeAsync(req services.AnalyzeRequest, jobType model.JobType) (string, error) {
	switch jobType {
	case "":
		jobType = model.JobTypeAnalyze
	case model.JobTypeAnalyze, model.JobTypeExtractKeywords, model.JobTypeExtractSentences:
	default:
		return "", fmt.Errorf("unsupported job type '%s'", jobType)
	}

	// Reject bad input before a job exists for it.
	if _, err := e.ValidateRequest(req); err != nil {
		return "", err
	}

	jobID := e.jobManager.CreateJob(jobType, req.Label, map[string]string{
		"operation":  string(jobType),
		"text_bytes": strconv.Itoa(len(req.Text)),
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) (*model.Analysis, error) {
		analysis, err := e.run(ctx, req, job.Type, func(current, total int, message string) {
			e.jobManager.UpdateJobProgress(job.ID, current, total, message)
		})
		if err != nil {
			return nil, err
		}
		e.track(analysis, job.Type, len(req.Text), true)
		return analysis, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start analysis job: %w", err)
	}

	return jobID, nil
}

// GetJob retrieves a job by ID
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns all jobs, optionally filtered by status
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}

// CancelJob requests cancellation of a pending or running job
func (e *Engine) CancelJob(jobID string) error {
	return e.jobManager.CancelJob(jobID)
}

// GetJobMetrics returns job performance metrics
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the overall job success rate
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetJobSuccessRate()
}

// GetCurrentWorkload returns the number of pending and running jobs
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}
