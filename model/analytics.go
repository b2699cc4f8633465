package model

import "time"

// AnalysisEvent represents a single finished analysis for analytics tracking
type AnalysisEvent struct {
	AnalysisID     string        `json:"analysis_id"`
	Kind           JobType       `json:"kind"`
	Async          bool          `json:"async"`
	TextBytes      int           `json:"text_bytes"`
	SentenceCount  int           `json:"sentence_count"`
	VocabularySize int           `json:"vocabulary_size"`
	Keywords       []string      `json:"keywords,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Timestamp      time.Time     `json:"timestamp"`
}

// PopularKeyword represents how often a word was selected as a keyword
type PopularKeyword struct {
	Word          string `json:"word"`
	AnalysisCount int    `json:"analysis_count"`
}

// ProcessingTimeDistribution represents processing time distribution buckets
type ProcessingTimeDistribution struct {
	Bucket0To10ms     int     `json:"bucket_0_10ms"`
	Bucket10To50ms    int     `json:"bucket_10_50ms"`
	Bucket50To250ms   int     `json:"bucket_50_250ms"`
	Bucket250msPlus   int     `json:"bucket_250ms_plus"`
	Percentage0To10   float64 `json:"percentage_0_10"`
	Percentage10To50  float64 `json:"percentage_10_50"`
	Percentage50To250 float64 `json:"percentage_50_250"`
	Percentage250Plus float64 `json:"percentage_250_plus"`
}

// AnalysisKindStats counts analyses per operation
type AnalysisKindStats struct {
	Analyze          int `json:"analyze"`
	ExtractKeywords  int `json:"extract_keywords"`
	ExtractSentences int `json:"extract_sentences"`
	Async            int `json:"async"`
}

// AnalysisPerformanceHourly represents hourly analysis volume and latency
type AnalysisPerformanceHourly struct {
	Hour              int   `json:"hour"`
	AnalysisCount     int   `json:"analysis_count"`
	AvgProcessingTime int64 `json:"avg_processing_time"` // in milliseconds
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics, last 24 hours
	TotalAnalyses         int     `json:"total_analyses"`
	AnalysesChangePercent float64 `json:"analyses_change_percent"`
	AvgProcessingTime     int64   `json:"avg_processing_time"` // in milliseconds
	ProcessingTimeChange  string  `json:"processing_time_change"`
	TotalTextBytes        int64   `json:"total_text_bytes"`
	AvgSentenceCount      float64 `json:"avg_sentence_count"`
	AvgVocabularySize     float64 `json:"avg_vocabulary_size"`

	// Detailed analytics
	Performance24h             []AnalysisPerformanceHourly `json:"performance_24h"`
	PopularKeywords            []PopularKeyword            `json:"popular_keywords"`
	ProcessingTimeDistribution ProcessingTimeDistribution  `json:"processing_time_distribution"`
	Kinds                      AnalysisKindStats           `json:"kinds"`
}
