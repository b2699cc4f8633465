package services

import (
	"context"

	"github.com/gcbaptista/go-textrank/config"
	"github.com/gcbaptista/go-textrank/internal/jobs"
	"github.com/gcbaptista/go-textrank/model"
)

// Segmenter splits raw text into sentences and three aligned token views.
// Every view holds exactly one token list per sentence.
type Segmenter interface {
	Segment(text string, lower bool) model.Segmentation
}

// AnalyzeRequest is the input of one analysis.
type AnalyzeRequest struct {
	Text     string                   `json:"text"`
	Label    string                   `json:"label,omitempty"`    // Optional: free-form name carried into async jobs
	Settings *config.AnalyzeOverrides `json:"settings,omitempty"` // Optional: per-request overrides of the server defaults
}

// Analyzer runs the TextRank pipeline synchronously.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error)
	ExtractKeywords(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error)
	ExtractSentences(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error)
	Settings() config.AnalyzeSettings
}

// AsyncAnalyzer runs analyses as background jobs.
type AsyncAnalyzer interface {
	AnalyzeAsync(req AnalyzeRequest, jobType model.JobType) (string, error)
}

// JobManager defines the interface for job management operations
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
	CancelJob(jobID string) error
	GetJobMetrics() jobs.JobMetricsData
	GetJobSuccessRate() float64
	GetCurrentWorkload() int64
}

// AnalyticsRecorder receives one event per finished analysis.
type AnalyticsRecorder interface {
	TrackAnalysis(event model.AnalysisEvent)
}

// AnalyticsProvider serves aggregated analysis statistics.
type AnalyticsProvider interface {
	GetDashboardData() model.AnalyticsDashboard
}

// AnalysisService is everything the HTTP layer needs from the engine.
type AnalysisService interface {
	Analyzer
	AsyncAnalyzer
	JobManager
}
