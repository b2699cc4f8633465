// Package config provides configuration structures for the TextRank service.
// It defines analysis settings, token view selection, and server options.
package config

import (
	"errors"
	"strconv"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
	"github.com/gcbaptista/go-textrank/internal/pagerank"
	"github.com/gcbaptista/go-textrank/model"
)

// View selects one of the token views produced by segmentation.
type View string

const (
	ViewNoFilter    View = "no_filter"     // every token
	ViewNoStopWords View = "no_stop_words" // stopwords removed
	ViewAllFilters  View = "all_filters"   // stopwords and non-content tokens removed
)

// Views lists the accepted view names.
var Views = []View{ViewNoFilter, ViewNoStopWords, ViewAllFilters}

// ParseView converts a selector value into a View. An empty value yields
// fallback; any other unknown value is a configuration error.
func ParseView(field, value string, fallback View) (View, error) {
	if value == "" {
		return fallback, nil
	}
	for _, v := range Views {
		if string(v) == value {
			return v, nil
		}
	}
	return "", internalErrors.NewConfigurationError(field, value, "must be one of no_filter, no_stop_words, all_filters")
}

// Select returns the token view of seg named by v.
// Callers validate v first; an unknown view selects nothing.
func (v View) Select(seg model.Segmentation) [][]string {
	switch v {
	case ViewNoFilter:
		return seg.WordsNoFilter
	case ViewNoStopWords:
		return seg.WordsNoStopWords
	case ViewAllFilters:
		return seg.WordsAllFilters
	}
	return nil
}

const (
	DefaultWindow         = 2
	DefaultNum            = 6
	DefaultWordMinLen     = 1
	DefaultKeywordsNum    = 12
	DefaultMinOccurNum    = 2
	DefaultSentencesNum   = 6
	DefaultSentenceMinLen = 6
)

// AnalyzeSettings contains every option of one analysis run.
type AnalyzeSettings struct {
	Window                int             `json:"window" yaml:"window"`                                   // Co-occurrence span for word edges, clamped to >= 2
	VertexSource          View            `json:"vertex_source" yaml:"vertex_source"`                     // View defining the ranked vocabulary
	EdgeSource            View            `json:"edge_source" yaml:"edge_source"`                         // View defining word edges
	SentenceSource        View            `json:"sentence_source" yaml:"sentence_source"`                 // View used for sentence similarity
	Lower                 bool            `json:"lower" yaml:"lower"`                                     // Lower-case text before segmentation
	PageRank              pagerank.Config `json:"pagerank" yaml:"pagerank"`                               // Solver parameters
	Num                   int             `json:"num" yaml:"num"`                                         // Number of keywords to select
	WordMinLen            int             `json:"word_min_len" yaml:"word_min_len"`                       // Minimum keyword length in runes
	KeywordsNum           int             `json:"keywords_num" yaml:"keywords_num"`                       // Keyword pool size for keyphrases
	MinOccurNum           int             `json:"min_occur_num" yaml:"min_occur_num"`                     // Minimum raw-text occurrences of a keyphrase
	SentencesNum          int             `json:"sentences_num" yaml:"sentences_num"`                     // Number of key sentences to select
	SentenceMinLen        int             `json:"sentence_min_len" yaml:"sentence_min_len"`               // Minimum key sentence length in runes
	ExcludeSelfSimilarity bool            `json:"exclude_self_similarity" yaml:"exclude_self_similarity"` // Drop sentence self-loops
}

// DefaultAnalyzeSettings returns the settings used when nothing is configured.
func DefaultAnalyzeSettings() AnalyzeSettings {
	return AnalyzeSettings{
		Window:         DefaultWindow,
		VertexSource:   ViewAllFilters,
		EdgeSource:     ViewNoStopWords,
		SentenceSource: ViewNoStopWords,
		PageRank:       pagerank.DefaultConfig(),
		Num:            DefaultNum,
		WordMinLen:     DefaultWordMinLen,
		KeywordsNum:    DefaultKeywordsNum,
		MinOccurNum:    DefaultMinOccurNum,
		SentencesNum:   DefaultSentencesNum,
		SentenceMinLen: DefaultSentenceMinLen,
	}
}

// ApplyDefaults fills zero-valued fields with their defaults. Negative values
// are kept so that Validate rejects them.
func (s *AnalyzeSettings) ApplyDefaults() {
	defaults := DefaultAnalyzeSettings()

	if s.Window == 0 {
		s.Window = defaults.Window
	}
	if s.VertexSource == "" {
		s.VertexSource = defaults.VertexSource
	}
	if s.EdgeSource == "" {
		s.EdgeSource = defaults.EdgeSource
	}
	if s.SentenceSource == "" {
		s.SentenceSource = defaults.SentenceSource
	}
	if s.PageRank.Damping == 0 {
		s.PageRank.Damping = defaults.PageRank.Damping
	}
	if s.PageRank.Tolerance == 0 {
		s.PageRank.Tolerance = defaults.PageRank.Tolerance
	}
	if s.PageRank.MaxIterations == 0 {
		s.PageRank.MaxIterations = defaults.PageRank.MaxIterations
	}
	if s.Num == 0 {
		s.Num = defaults.Num
	}
	if s.WordMinLen == 0 {
		s.WordMinLen = defaults.WordMinLen
	}
	if s.KeywordsNum == 0 {
		s.KeywordsNum = defaults.KeywordsNum
	}
	if s.MinOccurNum == 0 {
		s.MinOccurNum = defaults.MinOccurNum
	}
	if s.SentencesNum == 0 {
		s.SentencesNum = defaults.SentencesNum
	}
	if s.SentenceMinLen == 0 {
		s.SentenceMinLen = defaults.SentenceMinLen
	}
}

// Problems returns every configuration error found in the settings.
func (s *AnalyzeSettings) Problems() []*internalErrors.ConfigurationError {
	var problems []*internalErrors.ConfigurationError
	add := func(err error) {
		var cfgErr *internalErrors.ConfigurationError
		if errors.As(err, &cfgErr) {
			problems = append(problems, cfgErr)
		}
	}

	if _, err := ParseView("vertex_source", string(s.VertexSource), ViewAllFilters); err != nil {
		add(err)
	}
	if _, err := ParseView("edge_source", string(s.EdgeSource), ViewNoStopWords); err != nil {
		add(err)
	}
	if _, err := ParseView("sentence_source", string(s.SentenceSource), ViewNoStopWords); err != nil {
		add(err)
	}

	if s.PageRank.Damping <= 0 || s.PageRank.Damping > 1 {
		add(internalErrors.NewConfigurationError("pagerank.damping", formatFloat(s.PageRank.Damping), "must be in (0, 1]"))
	}
	if s.PageRank.Tolerance <= 0 {
		add(internalErrors.NewConfigurationError("pagerank.tolerance", formatFloat(s.PageRank.Tolerance), "must be positive"))
	}
	if s.PageRank.MaxIterations <= 0 {
		add(internalErrors.NewConfigurationError("pagerank.max_iterations", strconv.Itoa(s.PageRank.MaxIterations), "must be positive"))
	}

	nonNegative := []struct {
		field string
		value int
	}{
		{"num", s.Num},
		{"word_min_len", s.WordMinLen},
		{"keywords_num", s.KeywordsNum},
		{"min_occur_num", s.MinOccurNum},
		{"sentences_num", s.SentencesNum},
		{"sentence_min_len", s.SentenceMinLen},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			add(internalErrors.NewConfigurationError(f.field, strconv.Itoa(f.value), "cannot be negative"))
		}
	}

	return problems
}

// Validate returns nil when the settings are usable, or the joined
// configuration errors otherwise.
func (s *AnalyzeSettings) Validate() error {
	problems := s.Problems()
	if len(problems) == 0 {
		return nil
	}
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// AnalyzeOverrides holds per-request changes to the server defaults.
// Nil fields keep the base value.
type AnalyzeOverrides struct {
	Window                *int     `json:"window,omitempty"`
	VertexSource          *string  `json:"vertex_source,omitempty"`
	EdgeSource            *string  `json:"edge_source,omitempty"`
	SentenceSource        *string  `json:"sentence_source,omitempty"`
	Lower                 *bool    `json:"lower,omitempty"`
	Damping               *float64 `json:"damping,omitempty"`
	Tolerance             *float64 `json:"tolerance,omitempty"`
	MaxIterations         *int     `json:"max_iterations,omitempty"`
	Num                   *int     `json:"num,omitempty"`
	WordMinLen            *int     `json:"word_min_len,omitempty"`
	KeywordsNum           *int     `json:"keywords_num,omitempty"`
	MinOccurNum           *int     `json:"min_occur_num,omitempty"`
	SentencesNum          *int     `json:"sentences_num,omitempty"`
	SentenceMinLen        *int     `json:"sentence_min_len,omitempty"`
	ExcludeSelfSimilarity *bool    `json:"exclude_self_similarity,omitempty"`
}

// Apply returns base with every non-nil override applied. An explicit zero
// is kept as given (num 0 selects no keywords); an empty view selector keeps
// the base view. The result is not validated.
func (o *AnalyzeOverrides) Apply(base AnalyzeSettings) AnalyzeSettings {
	if o == nil {
		return base
	}
	if o.Window != nil {
		base.Window = *o.Window
	}
	if o.VertexSource != nil && *o.VertexSource != "" {
		base.VertexSource = View(*o.VertexSource)
	}
	if o.EdgeSource != nil && *o.EdgeSource != "" {
		base.EdgeSource = View(*o.EdgeSource)
	}
	if o.SentenceSource != nil && *o.SentenceSource != "" {
		base.SentenceSource = View(*o.SentenceSource)
	}
	if o.Lower != nil {
		base.Lower = *o.Lower
	}
	if o.Damping != nil {
		base.PageRank.Damping = *o.Damping
	}
	if o.Tolerance != nil {
		base.PageRank.Tolerance = *o.Tolerance
	}
	if o.MaxIterations != nil {
		base.PageRank.MaxIterations = *o.MaxIterations
	}
	if o.Num != nil {
		base.Num = *o.Num
	}
	if o.WordMinLen != nil {
		base.WordMinLen = *o.WordMinLen
	}
	if o.KeywordsNum != nil {
		base.KeywordsNum = *o.KeywordsNum
	}
	if o.MinOccurNum != nil {
		base.MinOccurNum = *o.MinOccurNum
	}
	if o.SentencesNum != nil {
		base.SentencesNum = *o.SentencesNum
	}
	if o.SentenceMinLen != nil {
		base.SentenceMinLen = *o.SentenceMinLen
	}
	if o.ExcludeSelfSimilarity != nil {
		base.ExcludeSelfSimilarity = *o.ExcludeSelfSimilarity
	}
	return base
}
