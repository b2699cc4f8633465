package jobs

import (
	"sync"
	"time"

	"github.com/gcbaptista/go-textrank/model"
)

// recentDurationsPerType bounds the execution times kept per analysis kind.
const recentDurationsPerType = 100

// JobMetricsData is a point-in-time copy of the job metrics.
type JobMetricsData struct {
	JobsCreated                int64                           `json:"jobs_created"`
	JobsCompleted              int64                           `json:"jobs_completed"`
	JobsFailed                 int64                           `json:"jobs_failed"`
	JobsCancelled              int64                           `json:"jobs_cancelled"`
	TotalExecutionTime         time.Duration                   `json:"total_execution_time_ns"`
	AverageExecutionTime       time.Duration                   `json:"average_execution_time_ns"`
	AverageExecutionTimeByType map[model.JobType]time.Duration `json:"average_execution_time_by_type_ns"` // over the last 100 runs of each kind
	JobsByType                 map[model.JobType]int64         `json:"jobs_by_type"`
	JobsByStatus               map[model.JobStatus]int64       `json:"jobs_by_status"`
	LastUpdated                time.Time                       `json:"last_updated"`
}

// JobMetrics tracks counters and execution times of analysis jobs.
type JobMetrics struct {
	mu            sync.RWMutex
	created       int64
	completed     int64
	failed        int64
	cancelled     int64
	totalExecTime time.Duration
	byType        map[model.JobType]int64
	byStatus      map[model.JobStatus]int64
	recentByType  map[model.JobType][]time.Duration
	lastUpdated   time.Time
}

// NewJobMetrics creates a new metrics collector
func NewJobMetrics() *JobMetrics {
	return &JobMetrics{
		byType:       make(map[model.JobType]int64),
		byStatus:     make(map[model.JobStatus]int64),
		recentByType: make(map[model.JobType][]time.Duration),
		lastUpdated:  time.Now(),
	}
}

// RecordJobCreated counts a new pending job
func (m *JobMetrics) RecordJobCreated(jobType model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created++
	m.byType[jobType]++
	m.byStatus[model.JobStatusPending]++
	m.lastUpdated = time.Now()
}

// RecordJobStatusChange moves one job between status counters
func (m *JobMetrics) RecordJobStatusChange(oldStatus, newStatus model.JobStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if oldStatus == newStatus {
		return
	}
	if oldStatus != "" && m.byStatus[oldStatus] > 0 {
		m.byStatus[oldStatus]--
	}
	m.byStatus[newStatus]++
	m.lastUpdated = time.Now()
}

// RecordJobCompleted records a successful analysis and its execution time
func (m *JobMetrics) RecordJobCompleted(jobType model.JobType, executionTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.completed++
	m.totalExecTime += executionTime

	recent := append(m.recentByType[jobType], executionTime)
	if len(recent) > recentDurationsPerType {
		recent = recent[len(recent)-recentDurationsPerType:]
	}
	m.recentByType[jobType] = recent

	m.lastUpdated = time.Now()
}

// RecordJobFailed records a failed analysis
func (m *JobMetrics) RecordJobFailed(model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failed++
	m.lastUpdated = time.Now()
}

// RecordJobCancelled records an analysis stopped on request or at shutdown
func (m *JobMetrics) RecordJobCancelled(model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelled++
	m.lastUpdated = time.Now()
}

// GetMetrics returns a copy of the current metrics
func (m *JobMetrics) GetMetrics() JobMetricsData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data := JobMetricsData{
		JobsCreated:                m.created,
		JobsCompleted:              m.completed,
		JobsFailed:                 m.failed,
		JobsCancelled:              m.cancelled,
		TotalExecutionTime:         m.totalExecTime,
		AverageExecutionTimeByType: make(map[model.JobType]time.Duration, len(m.recentByType)),
		JobsByType:                 make(map[model.JobType]int64, len(m.byType)),
		JobsByStatus:               make(map[model.JobStatus]int64, len(m.byStatus)),
		LastUpdated:                m.lastUpdated,
	}
	if m.completed > 0 {
		data.AverageExecutionTime = m.totalExecTime / time.Duration(m.completed)
	}
	for jobType, times := range m.recentByType {
		data.AverageExecutionTimeByType[jobType] = averageDuration(times)
	}
	for k, v := range m.byType {
		data.JobsByType[k] = v
	}
	for k, v := range m.byStatus {
		data.JobsByStatus[k] = v
	}
	return data
}

// GetAverageExecutionTimeByType returns the average execution time of the
// last runs of one analysis kind
func (m *JobMetrics) GetAverageExecutionTimeByType(jobType model.JobType) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return averageDuration(m.recentByType[jobType])
}

// GetSuccessRate returns the share of finished analyses that succeeded
// (0.0 to 1.0). Cancelled jobs are not counted.
func (m *JobMetrics) GetSuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	finished := m.completed + m.failed
	if finished == 0 {
		return 1.0 // No jobs yet, assume 100% success
	}
	return float64(m.completed) / float64(finished)
}

// GetCurrentWorkload returns the number of jobs still holding or waiting for
// a worker slot
func (m *JobMetrics) GetCurrentWorkload() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.byStatus[model.JobStatusPending] +
		m.byStatus[model.JobStatusRunning] +
		m.byStatus[model.JobStatusCancelling]
}

func averageDuration(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	var total time.Duration
	for _, t := range times {
		total += t
	}
	return total / time.Duration(len(times))
}
