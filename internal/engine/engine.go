package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-textrank/config"
	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
	"github.com/gcbaptista/go-textrank/internal/jobs"
	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/internal/textrank"
	"github.com/gcbaptista/go-textrank/model"
	"github.com/gcbaptista/go-textrank/services"
)

// Pipeline stages, in execution order.
const (
	StageSegment   = "segment"
	StageWords     = "words"
	StageSentences = "sentences"
)

var _ services.AnalysisService = (*Engine)(nil)

// Options configures an Engine.
type Options struct {
	Settings     config.AnalyzeSettings     // Server-wide defaults for every analysis
	MaxWorkers   int                        // Concurrent async analyses
	MaxTextBytes int                        // Largest accepted text; 0 means unlimited
	Analytics    services.AnalyticsRecorder // Optional: receives one event per finished analysis
	Logger       *zap.Logger
}

// Engine runs the TextRank pipeline over a segmenter.
// It implements the services.AnalysisService interface.
type Engine struct {
	settings     config.AnalyzeSettings
	segmenter    services.Segmenter
	jobManager   *jobs.Manager
	maxTextBytes int
	analytics    services.AnalyticsRecorder
	logger       *zap.Logger
}

// NewEngine creates an engine. The default settings are validated once here
// so that a misconfigured server fails at startup.
func NewEngine(segmenter services.Segmenter, opts Options) (*Engine, error) {
	if segmenter == nil {
		return nil, fmt.Errorf("segmenter cannot be nil")
	}

	settings := opts.Settings
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := logging.OrNop(opts.Logger)
	return &Engine{
		settings:     settings,
		segmenter:    segmenter,
		jobManager:   jobs.NewManager(opts.MaxWorkers, logger.Named("jobs")),
		maxTextBytes: opts.MaxTextBytes,
		analytics:    opts.Analytics,
		logger:       logger,
	}, nil
}

// Start starts the background job manager.
func (e *Engine) Start() {
	e.jobManager.Start()
}

// Stop cancels running jobs and waits for them.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// Settings returns the server-wide default settings.
func (e *Engine) Settings() config.AnalyzeSettings {
	return e.settings
}

// ResolveSettings merges per-request overrides into the defaults and
// validates the result. Overrides are taken literally: zero counts select
// nothing and out-of-range solver parameters are rejected.
func (e *Engine) ResolveSettings(overrides *config.AnalyzeOverrides) (config.AnalyzeSettings, error) {
	settings := overrides.Apply(e.settings)
	if err := settings.Validate(); err != nil {
		return config.AnalyzeSettings{}, err
	}
	return settings, nil
}

// Analyze runs the whole pipeline: word ranking, keywords, keyphrases,
// sentence ranking and key sentences.
func (e *Engine) Analyze(ctx context.Context, req services.AnalyzeRequest) (*model.Analysis, error) {
	analysis, err := e.run(ctx, req, model.JobTypeAnalyze, nil)
	if err != nil {
		return nil, err
	}
	e.track(analysis, model.JobTypeAnalyze, len(req.Text), false)
	return analysis, nil
}

// ExtractKeywords ranks words and derives keywords and keyphrases only.
func (e *Engine) ExtractKeywords(ctx context.Context, req services.AnalyzeRequest) (*model.Analysis, error) {
	analysis, err := e.run(ctx, req, model.JobTypeExtractKeywords, nil)
	if err != nil {
		return nil, err
	}
	e.track(analysis, model.JobTypeExtractKeywords, len(req.Text), false)
	return analysis, nil
}

// ExtractSentences ranks sentences and selects key sentences only.
func (e *Engine) ExtractSentences(ctx context.Context, req services.AnalyzeRequest) (*model.Analysis, error) {
	analysis, err := e.run(ctx, req, model.JobTypeExtractSentences, nil)
	if err != nil {
		return nil, err
	}
	e.track(analysis, model.JobTypeExtractSentences, len(req.Text), false)
	return analysis, nil
}

// ValidateRequest checks the text and settings of a request without running
// the analysis.
func (e *Engine) ValidateRequest(req services.AnalyzeRequest) (config.AnalyzeSettings, error) {
	if strings.TrimSpace(req.Text) == "" {
		return config.AnalyzeSettings{}, internalErrors.NewValidationError("text", "cannot be empty")
	}
	if !utf8.ValidString(req.Text) {
		return config.AnalyzeSettings{}, internalErrors.NewValidationError("text", "must be valid UTF-8")
	}
	if e.maxTextBytes > 0 && len(req.Text) > e.maxTextBytes {
		return config.AnalyzeSettings{}, internalErrors.NewValidationError("text",
			fmt.Sprintf("exceeds maximum size of %d bytes (got %d)", e.maxTextBytes, len(req.Text)))
	}
	return e.ResolveSettings(req.Settings)
}

// progressFunc reports pipeline progress; it may be nil.
type progressFunc func(current, total int, message string)

func (e *Engine) run(ctx context.Context, req services.AnalyzeRequest, kind model.JobType, progress progressFunc) (*model.Analysis, error) {
	settings, err := e.ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	analysis := &model.Analysis{
		ID:        uuid.New().String(),
		CreatedAt: startTime,
	}
	report := func(current int, message string) {
		if progress != nil {
			progress(current, 3, message)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, internalErrors.NewCancelledError(StageSegment, err)
	}
	seg := e.segmenter.Segment(req.Text, settings.Lower)
	analysis.SentenceCount = len(seg.Sentences)
	report(1, "segmented")

	ranker := textrank.NewRanker(settings.PageRank, e.logger)

	if kind != model.JobTypeExtractSentences {
		if err := ctx.Err(); err != nil {
			return nil, internalErrors.NewCancelledError(StageWords, err)
		}
		analysis.Words = ranker.RankWords(settings.VertexSource.Select(seg), settings.EdgeSource.Select(seg), settings.Window)
		analysis.VocabularySize = len(analysis.Words)
		analysis.Keywords = textrank.SelectKeywords(analysis.Words, settings.Num, settings.WordMinLen)
		analysis.Keyphrases = textrank.ExtractKeyphrases(analysis.Words, seg.WordsNoFilter, req.Text, textrank.KeyphraseOptions{
			KeywordsNum: settings.KeywordsNum,
			MinWordLen:  textrank.DefaultKeyphraseOptions().MinWordLen,
			MinOccurNum: settings.MinOccurNum,
		})
	}
	report(2, "words ranked")

	if kind != model.JobTypeExtractKeywords {
		if err := ctx.Err(); err != nil {
			return nil, internalErrors.NewCancelledError(StageSentences, err)
		}
		analysis.Sentences = ranker.RankSentences(seg.Sentences, settings.SentenceSource.Select(seg), textrank.SentenceOptions{
			ExcludeSelfSimilarity: settings.ExcludeSelfSimilarity,
		})
		analysis.KeySentences = textrank.SelectSentences(analysis.Sentences, settings.SentencesNum, settings.SentenceMinLen)
	}
	report(3, "sentences ranked")

	elapsed := time.Since(startTime)
	analysis.ProcessingTimeMs = float64(elapsed.Microseconds()) / 1000
	e.logger.Info("analysis completed",
		zap.String("analysis_id", analysis.ID),
		zap.String("kind", string(kind)),
		zap.Int("text_bytes", len(req.Text)),
		zap.Int("sentences", analysis.SentenceCount),
		zap.Int("vocabulary", analysis.VocabularySize),
		zap.Duration("duration", elapsed))
	return analysis, nil
}

// track reports a finished analysis to the analytics recorder, if any.
func (e *Engine) track(analysis *model.Analysis, kind model.JobType, textBytes int, async bool) {
	if e.analytics == nil {
		return
	}

	keywords := make([]string, len(analysis.Keywords))
	for i, kw := range analysis.Keywords {
		keywords[i] = kw.Word
	}

	e.analytics.TrackAnalysis(model.AnalysisEvent{
		AnalysisID:     analysis.ID,
		Kind:           kind,
		Async:          async,
		TextBytes:      textBytes,
		SentenceCount:  analysis.SentenceCount,
		VocabularySize: analysis.VocabularySize,
		Keywords:       keywords,
		ProcessingTime: time.Duration(analysis.ProcessingTimeMs * float64(time.Millisecond)),
		Timestamp:      analysis.CreatedAt,
	})
}
