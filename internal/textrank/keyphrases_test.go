package textrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-textrank/model"
)

func TestExtractKeyphrases(t *testing.T) {
	ranked := []model.RankedWord{
		{Word: "quick", Weight: 0.5},
		{Word: "brown", Weight: 0.3},
		{Word: "fox", Weight: 0.2},
	}
	opts := KeyphraseOptions{KeywordsNum: 2, MinWordLen: 1, MinOccurNum: 2}

	tests := []struct {
		name       string
		unfiltered [][]string
		text       string
		opts       KeyphraseOptions
		want       []string
	}{
		{
			name:       "phrase occurs twice",
			unfiltered: [][]string{{"quick", "brown", "fox", "jumps"}},
			text:       "quickbrown fox jumps; quickbrown again",
			opts:       opts,
			want:       []string{"quickbrown"},
		},
		{
			name:       "phrase occurs once",
			unfiltered: [][]string{{"quick", "brown", "fox", "jumps"}},
			text:       "quickbrown fox jumps",
			opts:       opts,
			want:       []string{},
		},
		{
			name:       "spaced text never matches the joined phrase",
			unfiltered: [][]string{{"quick", "brown", "fox"}},
			text:       "quick brown fox. quick brown fox.",
			opts:       opts,
			want:       []string{},
		},
		{
			name:       "single keywords are not phrases",
			unfiltered: [][]string{{"quick", "fox", "brown"}},
			text:       "quickquick brownbrown",
			opts:       opts,
			want:       []string{},
		},
		{
			name:       "runs do not cross sentence boundaries",
			unfiltered: [][]string{{"the", "quick"}, {"brown", "dog"}},
			text:       "quickbrown quickbrown",
			opts:       opts,
			want:       []string{},
		},
		{
			name:       "longer runs join every keyword",
			unfiltered: [][]string{{"a", "quick", "brown", "fox"}},
			text:       "quickbrownfox and quickbrownfox",
			opts:       KeyphraseOptions{KeywordsNum: 3, MinWordLen: 1, MinOccurNum: 2},
			want:       []string{"quickbrownfox"},
		},
		{
			name:       "zero min occurrence keeps every run",
			unfiltered: [][]string{{"quick", "brown", "and", "brown", "quick"}},
			text:       "",
			opts:       KeyphraseOptions{KeywordsNum: 2, MinWordLen: 1, MinOccurNum: 0},
			want:       []string{"quickbrown", "brownquick"},
		},
		{
			name:       "duplicates are reported once in discovery order",
			unfiltered: [][]string{{"brown", "quick"}, {"quick", "brown"}, {"brown", "quick"}},
			text:       "brownquick quickbrown brownquick quickbrown",
			opts:       opts,
			want:       []string{"brownquick", "quickbrown"},
		},
		{
			name:       "occurrences do not overlap",
			unfiltered: [][]string{{"quick", "quick"}},
			text:       "quickquickquick",
			opts:       KeyphraseOptions{KeywordsNum: 1, MinWordLen: 1, MinOccurNum: 2},
			want:       []string{},
		},
		{
			name:       "empty input",
			unfiltered: nil,
			text:       "",
			opts:       opts,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeyphrases(ranked, tt.unfiltered, tt.text, tt.opts)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKeyphrases_KeywordPoolRespectsMinLength(t *testing.T) {
	ranked := []model.RankedWord{
		{Word: "ai", Weight: 0.6},
		{Word: "model", Weight: 0.3},
		{Word: "training", Weight: 0.1},
	}
	unfiltered := [][]string{{"ai", "model", "training"}}
	text := "aimodel modeltraining modeltraining aimodel"

	got := ExtractKeyphrases(ranked, unfiltered, text, KeyphraseOptions{KeywordsNum: 2, MinWordLen: 3, MinOccurNum: 2})

	assert.Equal(t, []string{"modeltraining"}, got)
}

func TestDefaultKeyphraseOptions(t *testing.T) {
	opts := DefaultKeyphraseOptions()

	assert.Equal(t, 12, opts.KeywordsNum)
	assert.Equal(t, 1, opts.MinWordLen)
	assert.Equal(t, 2, opts.MinOccurNum)
}
