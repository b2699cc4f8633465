package analytics

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/model"
)

const (
	maxEventsToKeep       = 10000 // Keep last 10k events for performance
	popularKeywordsToKeep = 10
)

// Service implements analytics tracking and reporting. Events live in memory
// only and are lost on restart.
type Service struct {
	mutex  sync.RWMutex
	events []model.AnalysisEvent
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a new analytics service
func NewService(logger *zap.Logger) *Service {
	return &Service{
		events: make([]model.AnalysisEvent, 0),
		now:    time.Now,
		logger: logging.OrNop(logger),
	}
}

// TrackAnalysis records a finished analysis. Events without a timestamp are
// stamped with the current time.
func (s *Service) TrackAnalysis(event model.AnalysisEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		dropped := len(s.events) - maxEventsToKeep
		s.events = s.events[dropped:]
		s.logger.Debug("analytics events trimmed", zap.Int("dropped", dropped))
	}
}

// EventCount returns the number of retained events
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	now := s.now()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	// Filter events for different time periods
	last24hEvents := filterEventsByTimeRange(s.events, yesterday, now)
	prev24hEvents := filterEventsByTimeRange(s.events, yesterday.Add(-24*time.Hour), yesterday)
	lastWeekEvents := filterEventsByTimeRange(s.events, lastWeek, now)

	dashboard := model.AnalyticsDashboard{
		TotalAnalyses:              len(last24hEvents),
		AnalysesChangePercent:      calculateChangePercent(len(last24hEvents), len(prev24hEvents)),
		AvgProcessingTime:          calculateAvgProcessingTime(last24hEvents),
		ProcessingTimeChange:       calculateProcessingTimeChange(last24hEvents, prev24hEvents),
		Performance24h:             getHourlyPerformance(last24hEvents),
		PopularKeywords:            getPopularKeywords(lastWeekEvents),
		ProcessingTimeDistribution: getProcessingTimeDistribution(last24hEvents),
		Kinds:                      getKindStats(last24hEvents),
	}

	if n := len(last24hEvents); n > 0 {
		var sentences, vocabulary int
		for _, event := range last24hEvents {
			dashboard.TotalTextBytes += int64(event.TextBytes)
			sentences += event.SentenceCount
			vocabulary += event.VocabularySize
		}
		dashboard.AvgSentenceCount = float64(sentences) / float64(n)
		dashboard.AvgVocabularySize = float64(vocabulary) / float64(n)
	}

	return dashboard
}

// filterEventsByTimeRange returns events in the half-open range (start, end]
func filterEventsByTimeRange(events []model.AnalysisEvent, start, end time.Time) []model.AnalysisEvent {
	var filtered []model.AnalysisEvent
	for _, event := range events {
		if event.Timestamp.After(start) && !event.Timestamp.After(end) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// calculateChangePercent calculates percentage change between current and previous values
func calculateChangePercent(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(current-previous) / float64(previous) * 100.0
}

// calculateAvgProcessingTime calculates average processing time for events in milliseconds
func calculateAvgProcessingTime(events []model.AnalysisEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ProcessingTime
	}
	avgDuration := total / time.Duration(len(events))
	return avgDuration.Milliseconds()
}

// calculateProcessingTimeChange reports the processing time trend
func calculateProcessingTimeChange(current, previous []model.AnalysisEvent) string {
	currentAvg := calculateAvgProcessingTime(current)
	previousAvg := calculateAvgProcessingTime(previous)

	if previousAvg == 0 {
		return "stable"
	}

	change := float64(currentAvg-previousAvg) / float64(previousAvg)
	if change > 0.1 {
		return "up"
	} else if change < -0.1 {
		return "down"
	}
	return "stable"
}

// getHourlyPerformance returns hourly analysis volume for the last 24 hours
func getHourlyPerformance(events []model.AnalysisEvent) []model.AnalysisPerformanceHourly {
	hourlyData := make(map[int][]model.AnalysisEvent)

	for _, event := range events {
		hour := event.Timestamp.Hour()
		hourlyData[hour] = append(hourlyData[hour], event)
	}

	performance := make([]model.AnalysisPerformanceHourly, 0, 24)
	for hour := 0; hour < 24; hour++ {
		events := hourlyData[hour]
		performance = append(performance, model.AnalysisPerformanceHourly{
			Hour:              hour,
			AnalysisCount:     len(events),
			AvgProcessingTime: calculateAvgProcessingTime(events),
		})
	}

	return performance
}

// getPopularKeywords returns the words most often selected as keywords. A
// word counts once per analysis.
func getPopularKeywords(events []model.AnalysisEvent) []model.PopularKeyword {
	wordCounts := make(map[string]int)

	for _, event := range events {
		seen := make(map[string]struct{}, len(event.Keywords))
		for _, word := range event.Keywords {
			if _, dup := seen[word]; dup || word == "" {
				continue
			}
			seen[word] = struct{}{}
			wordCounts[word]++
		}
	}

	popular := make([]model.PopularKeyword, 0, len(wordCounts))
	for word, count := range wordCounts {
		popular = append(popular, model.PopularKeyword{Word: word, AnalysisCount: count})
	}

	// Sort by count descending, then alphabetically so the order is stable
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].AnalysisCount != popular[j].AnalysisCount {
			return popular[i].AnalysisCount > popular[j].AnalysisCount
		}
		return popular[i].Word < popular[j].Word
	})

	if len(popular) > popularKeywordsToKeep {
		popular = popular[:popularKeywordsToKeep]
	}
	return popular
}

// getProcessingTimeDistribution returns processing time distribution
func getProcessingTimeDistribution(events []model.AnalysisEvent) model.ProcessingTimeDistribution {
	dist := model.ProcessingTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		ms := event.ProcessingTime.Milliseconds()
		switch {
		case ms <= 10:
			dist.Bucket0To10ms++
		case ms <= 50:
			dist.Bucket10To50ms++
		case ms <= 250:
			dist.Bucket50To250ms++
		default:
			dist.Bucket250msPlus++
		}
	}

	// Calculate percentages
	dist.Percentage0To10 = float64(dist.Bucket0To10ms) / float64(total) * 100
	dist.Percentage10To50 = float64(dist.Bucket10To50ms) / float64(total) * 100
	dist.Percentage50To250 = float64(dist.Bucket50To250ms) / float64(total) * 100
	dist.Percentage250Plus = float64(dist.Bucket250msPlus) / float64(total) * 100

	return dist
}

// getKindStats counts analyses per operation
func getKindStats(events []model.AnalysisEvent) model.AnalysisKindStats {
	stats := model.AnalysisKindStats{}

	for _, event := range events {
		switch event.Kind {
		case model.JobTypeAnalyze:
			stats.Analyze++
		case model.JobTypeExtractKeywords:
			stats.ExtractKeywords++
		case model.JobTypeExtractSentences:
			stats.ExtractSentences++
		}
		if event.Async {
			stats.Async++
		}
	}

	return stats
}
