package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/model"
)

// DefaultRetention is how long finished jobs are kept before cleanup.
const DefaultRetention = 24 * time.Hour

// JobFunc is the work run for a job. It receives a snapshot of the job and
// must return promptly once ctx is cancelled.
type JobFunc func(ctx context.Context, job *model.Job) (*model.Analysis, error)

// Manager handles background job execution and tracking
type Manager struct {
	mu       sync.RWMutex
	jobs     map[string]*model.Job
	cancels  map[string]context.CancelFunc
	workers  chan struct{} // Limits concurrent jobs
	stopChan chan struct{}
	stopOnce sync.Once
	baseCtx  context.Context
	stopAll  context.CancelFunc
	wg       sync.WaitGroup
	metrics  *JobMetrics
	logger   *zap.Logger
}

// NewManager creates a new job manager with specified worker count
func NewManager(maxWorkers int, logger *zap.Logger) *Manager {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		jobs:     make(map[string]*model.Job),
		cancels:  make(map[string]context.CancelFunc),
		workers:  make(chan struct{}, maxWorkers),
		stopChan: make(chan struct{}),
		baseCtx:  ctx,
		stopAll:  cancel,
		metrics:  NewJobMetrics(),
		logger:   logging.OrNop(logger),
	}
}

// Start begins the job manager and starts background cleanup
func (m *Manager) Start() {
	m.logger.Info("job manager started", zap.Int("max_workers", cap(m.workers)))

	go m.cleanupRoutine()
}

// Stop cancels running jobs and waits for them to return. It is safe to call
// more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		m.stopAll()
		m.wg.Wait()
		m.logger.Info("job manager stopped")
	})
}

// CreateJob creates a new job and returns its ID
func (m *Manager) CreateJob(jobType model.JobType, label string, metadata map[string]string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &model.Job{
		ID:        uuid.New().String(),
		Type:      jobType,
		Status:    model.JobStatusPending,
		Label:     label,
		CreatedAt: time.Now(),
		Metadata:  metadata,
	}

	m.jobs[job.ID] = job
	m.metrics.RecordJobCreated(jobType)
	m.logger.Debug("job created",
		zap.String("job_id", job.ID),
		zap.String("type", string(job.Type)),
		zap.String("label", job.Label))
	return job.ID
}

// GetJob retrieves a job by ID
func (m *Manager) GetJob(jobID string) (*model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return nil, internalErrors.NewJobNotFoundError(jobID)
	}
	return snapshot(job), nil
}

// ListJobs returns all jobs, newest first, optionally filtered by status
func (m *Manager) ListJobs(status *model.JobStatus) []*model.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		if status == nil || job.Status == *status {
			result = append(result, snapshot(job))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// ExecuteJob schedules a pending job. The job waits for a free worker slot
// in the background, so ExecuteJob never blocks on a busy pool.
func (m *Manager) ExecuteJob(jobID string, jobFunc JobFunc) error {
	select {
	case <-m.stopChan:
		return fmt.Errorf("job manager is shutting down")
	default:
	}

	m.mu.Lock()
	job, exists := m.jobs[jobID]
	if !exists {
		m.mu.Unlock()
		return internalErrors.NewJobNotFoundError(jobID)
	}
	if job.Status != model.JobStatusPending {
		m.mu.Unlock()
		return fmt.Errorf("job with ID '%s' is not in pending status (current: %s)", jobID, job.Status)
	}
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.cancels[jobID] = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer m.releaseCancel(jobID)

		// Acquire worker slot
		select {
		case m.workers <- struct{}{}:
		case <-ctx.Done():
			m.finishJob(jobID, nil, ctx.Err(), 0)
			return
		}
		defer func() { <-m.workers }()

		current, ok := m.markRunning(jobID)
		if !ok {
			// Cancelled while waiting for a slot.
			m.finishJob(jobID, nil, context.Canceled, 0)
			return
		}

		startTime := time.Now()
		result, err := runJob(ctx, current, jobFunc)
		m.finishJob(jobID, result, err, time.Since(startTime))
	}()

	return nil
}

// runJob calls jobFunc and turns a panic into a job failure.
func runJob(ctx context.Context, job *model.Job, jobFunc JobFunc) (result *model.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("job panicked: %v", r)
		}
	}()
	return jobFunc(ctx, job)
}

// CancelJob requests cancellation of a pending or running job. Finished jobs
// are left untouched.
func (m *Manager) CancelJob(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return internalErrors.NewJobNotFoundError(jobID)
	}

	switch job.Status {
	case model.JobStatusPending:
		if cancel, ok := m.cancels[jobID]; ok {
			m.setStatusLocked(job, model.JobStatusCancelling, "")
			cancel()
			return nil
		}
		m.setStatusLocked(job, model.JobStatusCancelled, "cancelled before start")
		m.metrics.RecordJobCancelled(job.Type)
	case model.JobStatusRunning:
		m.setStatusLocked(job, model.JobStatusCancelling, "")
		if cancel, ok := m.cancels[jobID]; ok {
			cancel()
		}
	case model.JobStatusCancelling:
	default:
		return fmt.Errorf("job with ID '%s' already finished (status: %s)", jobID, job.Status)
	}
	return nil
}

// UpdateJobProgress updates the progress of a running job
func (m *Manager) UpdateJobProgress(jobID string, current, total int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	if job.Progress == nil {
		job.Progress = &model.JobProgress{}
	}

	job.Progress.Current = current
	job.Progress.Total = total
	job.Progress.Message = message
}

func (m *Manager) markRunning(jobID string) (*model.Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists || job.Status != model.JobStatusPending {
		return nil, false
	}
	now := time.Now()
	job.StartedAt = &now
	m.setStatusLocked(job, model.JobStatusRunning, "")
	return snapshot(job), true
}

func (m *Manager) finishJob(jobID string, result *model.Analysis, err error, executionTime time.Duration) {
	m.mu.Lock()
	job, exists := m.jobs[jobID]
	if !exists {
		m.mu.Unlock()
		return
	}

	switch {
	case err == nil:
		job.Result = result
		m.setStatusLocked(job, model.JobStatusCompleted, "")
		m.mu.Unlock()
		m.metrics.RecordJobCompleted(job.Type, executionTime)
		m.logger.Info("job completed",
			zap.String("job_id", jobID),
			zap.Duration("duration", executionTime))
	case errors.Is(err, context.Canceled) || errors.Is(err, internalErrors.ErrAnalysisCancelled):
		m.setStatusLocked(job, model.JobStatusCancelled, err.Error())
		m.mu.Unlock()
		m.metrics.RecordJobCancelled(job.Type)
		m.logger.Info("job cancelled", zap.String("job_id", jobID), zap.Error(err))
	default:
		m.setStatusLocked(job, model.JobStatusFailed, err.Error())
		m.mu.Unlock()
		m.metrics.RecordJobFailed(job.Type)
		m.logger.Warn("job failed",
			zap.String("job_id", jobID),
			zap.Duration("duration", executionTime),
			zap.Error(err))
	}
}

// setStatusLocked updates the status of a job. The caller holds m.mu.
func (m *Manager) setStatusLocked(job *model.Job, status model.JobStatus, errorMsg string) {
	oldStatus := job.Status
	job.Status = status
	if errorMsg != "" {
		job.Error = errorMsg
	}

	if status == model.JobStatusCompleted || status == model.JobStatusFailed || status == model.JobStatusCancelled {
		now := time.Now()
		job.CompletedAt = &now
	}

	m.metrics.RecordJobStatusChange(oldStatus, status)
}

func (m *Manager) releaseCancel(jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cancel, ok := m.cancels[jobID]; ok {
		cancel()
		delete(m.cancels, jobID)
	}
}

// cleanupRoutine runs periodic job cleanup
func (m *Manager) cleanupRoutine() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanupOldJobs(DefaultRetention)
		case <-m.stopChan:
			return
		}
	}
}

// CleanupOldJobs removes finished jobs older than the specified duration
func (m *Manager) CleanupOldJobs(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0

	for jobID, job := range m.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(m.jobs, jobID)
			cleaned++
		}
	}

	if cleaned > 0 {
		m.logger.Info("cleaned up old jobs", zap.Int("count", cleaned))
	}
	return cleaned
}

// GetMetrics returns current job performance metrics
func (m *Manager) GetMetrics() JobMetricsData {
	return m.metrics.GetMetrics()
}

// GetJobSuccessRate returns the overall job success rate
func (m *Manager) GetJobSuccessRate() float64 {
	return m.metrics.GetSuccessRate()
}

// GetCurrentWorkload returns the number of currently active jobs
func (m *Manager) GetCurrentWorkload() int64 {
	return m.metrics.GetCurrentWorkload()
}

// snapshot returns a copy of the job safe to hand out of the lock. The
// analysis result is shared: it is never modified after completion.
func snapshot(job *model.Job) *model.Job {
	jobCopy := *job
	if job.Progress != nil {
		progressCopy := *job.Progress
		jobCopy.Progress = &progressCopy
	}
	if job.Metadata != nil {
		jobCopy.Metadata = make(map[string]string, len(job.Metadata))
		for k, v := range job.Metadata {
			jobCopy.Metadata[k] = v
		}
	}
	return &jobCopy
}
