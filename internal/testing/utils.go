// Package testing provides utilities and helpers for testing the TextRank service.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-textrank/config"
	"github.com/gcbaptista/go-textrank/internal/engine"
	"github.com/gcbaptista/go-textrank/internal/segmenter"
	"github.com/gcbaptista/go-textrank/model"
	"github.com/gcbaptista/go-textrank/services"
)

// Sample texts shared by tests.
const (
	// CatDogText has two sentences sharing the word "sat".
	CatDogText = "The cat sat on the mat. The dog sat on the log."

	// GraphText is a short paragraph about ranking that mixes clause
	// delimiters, numbers and stopwords.
	GraphText = "TextRank builds a graph of words. Words that appear together are linked; " +
		"the graph is ranked with PageRank! Ranked words become keywords, " +
		"and ranked sentences become a summary of 3 lines.\n" +
		"A summary keeps the sentences that share the most words with the others."
)

// EngineOptions tweaks the engine built by CreateTestEngine.
type EngineOptions struct {
	Settings     *config.AnalyzeSettings
	Stopwords    []string // nil keeps the default English list
	MaxWorkers   int
	MaxTextBytes int
}

// CreateTestEngine creates a started engine with the real segmenter. The
// engine is stopped when the test ends.
func CreateTestEngine(t *testing.T, opts EngineOptions) *engine.Engine {
	t.Helper()

	seg, err := segmenter.New(opts.Stopwords)
	require.NoError(t, err, "Failed to create segmenter")

	settings := config.DefaultAnalyzeSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	if opts.MaxWorkers == 0 {
		opts.MaxWorkers = 2
	}

	eng, err := engine.NewEngine(seg, engine.Options{
		Settings:     settings,
		MaxWorkers:   opts.MaxWorkers,
		MaxTextBytes: opts.MaxTextBytes,
	})
	require.NoError(t, err, "Failed to create test engine")

	eng.Start()
	t.Cleanup(eng.Stop)
	return eng
}

// WriteStopwordsFile writes a stopword list into a temporary directory and
// returns its path.
func WriteStopwordsFile(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o600))
	return path
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	LogProgress  bool
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      5 * time.Second,
		PollInterval: 10 * time.Millisecond,
		LogProgress:  false,
	}
}

// WaitForJobStatus polls a job until it reaches one of the final statuses
// or times out, and returns the last snapshot.
func WaitForJobStatus(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	t.Helper()
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not finish within %v timeout", jobID, opts.Timeout)
			return nil
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted, model.JobStatusFailed, model.JobStatusCancelled:
				return job
			case model.JobStatusRunning:
				if opts.LogProgress && job.Progress != nil {
					t.Logf("Job %s progress: %d/%d - %s",
						jobID,
						job.Progress.Current,
						job.Progress.Total,
						job.Progress.Message)
				}
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully and carries a result
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType) {
	t.Helper()
	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed (error: %s)", job.Error)
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.NotNil(t, job.Result, "Job should carry the analysis")
	assert.Empty(t, job.Error, "Job should not have error")
}

// AssertWeightsSumToOne checks that a non-empty ranking is a probability distribution.
func AssertWeightsSumToOne(t *testing.T, weights []float64) {
	t.Helper()
	if len(weights) == 0 {
		return
	}
	var sum float64
	for _, w := range weights {
		assert.GreaterOrEqual(t, w, 0.0, "weights cannot be negative")
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6, "weights should sum to 1")
}

// WordWeights extracts the weights of a word ranking.
func WordWeights(words []model.RankedWord) []float64 {
	weights := make([]float64, len(words))
	for i, w := range words {
		weights[i] = w.Weight
	}
	return weights
}

// SentenceWeights extracts the weights of a sentence ranking.
func SentenceWeights(sentences []model.RankedSentence) []float64 {
	weights := make([]float64, len(sentences))
	for i, s := range sentences {
		weights[i] = s.Weight
	}
	return weights
}

// AssertSortedByWeight checks that weights never increase.
func AssertSortedByWeight(t *testing.T, weights []float64) {
	t.Helper()
	for i := 1; i < len(weights); i++ {
		assert.LessOrEqual(t, weights[i], weights[i-1],
			"weight %d should not exceed weight %d", i, i-1)
	}
}
