package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
	"github.com/gcbaptista/go-textrank/model"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback View
		want     View
		wantErr  bool
	}{
		{"empty uses fallback", "", ViewAllFilters, ViewAllFilters, false},
		{"empty uses other fallback", "", ViewNoStopWords, ViewNoStopWords, false},
		{"no_filter", "no_filter", ViewAllFilters, ViewNoFilter, false},
		{"no_stop_words", "no_stop_words", ViewAllFilters, ViewNoStopWords, false},
		{"all_filters", "all_filters", ViewNoStopWords, ViewAllFilters, false},
		{"unknown value", "nouns_only", ViewAllFilters, "", true},
		{"prefixed name is not accepted", "words_all_filters", ViewAllFilters, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseView("vertex_source", tt.value, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestView_Select(t *testing.T) {
	seg := model.Segmentation{
		Sentences:        []string{"The cat sat."},
		WordsNoFilter:    [][]string{{"the", "cat", "sat"}},
		WordsNoStopWords: [][]string{{"cat", "sat"}},
		WordsAllFilters:  [][]string{{"cat"}},
	}

	assert.Equal(t, seg.WordsNoFilter, ViewNoFilter.Select(seg))
	assert.Equal(t, seg.WordsNoStopWords, ViewNoStopWords.Select(seg))
	assert.Equal(t, seg.WordsAllFilters, ViewAllFilters.Select(seg))
	assert.Nil(t, View("bogus").Select(seg))
}

func TestAnalyzeSettings_ApplyDefaults(t *testing.T) {
	var settings AnalyzeSettings
	settings.ApplyDefaults()

	assert.Equal(t, DefaultAnalyzeSettings(), settings)
	assert.Equal(t, 2, settings.Window)
	assert.Equal(t, ViewAllFilters, settings.VertexSource)
	assert.Equal(t, ViewNoStopWords, settings.EdgeSource)
	assert.Equal(t, 0.85, settings.PageRank.Damping)
	assert.Equal(t, 6, settings.Num)
	assert.Equal(t, 12, settings.KeywordsNum)
	assert.Equal(t, 2, settings.MinOccurNum)
}

func TestAnalyzeSettings_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	settings := AnalyzeSettings{Window: 5, EdgeSource: ViewNoFilter, Num: 3}
	settings.ApplyDefaults()

	assert.Equal(t, 5, settings.Window)
	assert.Equal(t, ViewNoFilter, settings.EdgeSource)
	assert.Equal(t, 3, settings.Num)
	assert.Equal(t, ViewAllFilters, settings.VertexSource)
}

func TestAnalyzeSettings_ApplyDefaultsKeepsNegativeSolverValues(t *testing.T) {
	settings := AnalyzeSettings{}
	settings.PageRank.Damping = -0.5
	settings.PageRank.Tolerance = -1
	settings.PageRank.MaxIterations = -3
	settings.ApplyDefaults()

	assert.Equal(t, -0.5, settings.PageRank.Damping)
	assert.Equal(t, -1.0, settings.PageRank.Tolerance)
	assert.Equal(t, -3, settings.PageRank.MaxIterations)

	err := settings.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfiguration))
	assert.Len(t, settings.Problems(), 3)
}

func TestAnalyzeSettings_Validate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(s *AnalyzeSettings)
		expectedErrors int
		fields         []string
	}{
		{
			name:           "defaults are valid",
			mutate:         func(s *AnalyzeSettings) {},
			expectedErrors: 0,
		},
		{
			name:           "window below two is clamped later, not rejected",
			mutate:         func(s *AnalyzeSettings) { s.Window = 1 },
			expectedErrors: 0,
		},
		{
			name:           "unknown vertex source",
			mutate:         func(s *AnalyzeSettings) { s.VertexSource = "verbs" },
			expectedErrors: 1,
			fields:         []string{"vertex_source"},
		},
		{
			name: "unknown edge and sentence sources",
			mutate: func(s *AnalyzeSettings) {
				s.EdgeSource = "x"
				s.SentenceSource = "y"
			},
			expectedErrors: 2,
			fields:         []string{"edge_source", "sentence_source"},
		},
		{
			name:           "damping above one",
			mutate:         func(s *AnalyzeSettings) { s.PageRank.Damping = 1.5 },
			expectedErrors: 1,
			fields:         []string{"pagerank.damping"},
		},
		{
			name: "non-positive solver parameters",
			mutate: func(s *AnalyzeSettings) {
				s.PageRank.Damping = 0
				s.PageRank.Tolerance = -1
				s.PageRank.MaxIterations = 0
			},
			expectedErrors: 3,
		},
		{
			name: "negative selection sizes",
			mutate: func(s *AnalyzeSettings) {
				s.Num = -1
				s.MinOccurNum = -2
			},
			expectedErrors: 2,
			fields:         []string{"num", "min_occur_num"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAnalyzeSettings()
			tt.mutate(&settings)

			problems := settings.Problems()
			assert.Len(t, problems, tt.expectedErrors)

			for i, field := range tt.fields {
				assert.Equal(t, field, problems[i].Field)
			}

			err := settings.Validate()
			if tt.expectedErrors == 0 {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfiguration))
			}
		})
	}
}

func TestAnalyzeOverrides_Apply(t *testing.T) {
	window := 4
	vertex := "no_filter"
	damping := 0.5
	minOccur := 1
	exclude := true

	overrides := &AnalyzeOverrides{
		Window:                &window,
		VertexSource:          &vertex,
		Damping:               &damping,
		MinOccurNum:           &minOccur,
		ExcludeSelfSimilarity: &exclude,
	}

	base := DefaultAnalyzeSettings()
	got := overrides.Apply(base)

	assert.Equal(t, 4, got.Window)
	assert.Equal(t, ViewNoFilter, got.VertexSource)
	assert.Equal(t, 0.5, got.PageRank.Damping)
	assert.Equal(t, 1, got.MinOccurNum)
	assert.True(t, got.ExcludeSelfSimilarity)

	// Untouched fields keep the base value.
	assert.Equal(t, base.EdgeSource, got.EdgeSource)
	assert.Equal(t, base.PageRank.Tolerance, got.PageRank.Tolerance)
	assert.Equal(t, base.Num, got.Num)

	// The base is not modified.
	assert.Equal(t, DefaultAnalyzeSettings(), base)
}

func TestAnalyzeOverrides_ApplyKeepsExplicitZeros(t *testing.T) {
	zero := 0
	empty := ""
	overrides := &AnalyzeOverrides{
		Num:          &zero,
		KeywordsNum:  &zero,
		SentencesNum: &zero,
		EdgeSource:   &empty,
	}

	got := overrides.Apply(DefaultAnalyzeSettings())

	assert.Equal(t, 0, got.Num)
	assert.Equal(t, 0, got.KeywordsNum)
	assert.Equal(t, 0, got.SentencesNum)
	assert.Equal(t, ViewNoStopWords, got.EdgeSource)
	assert.NoError(t, got.Validate())
}

func TestAnalyzeOverrides_NilIsNoop(t *testing.T) {
	var overrides *AnalyzeOverrides
	base := DefaultAnalyzeSettings()
	assert.Equal(t, base, overrides.Apply(base))
}
