package textrank

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-textrank/internal/pagerank"
	"github.com/gcbaptista/go-textrank/model"
)

var catDog = [][]string{
	{"cat", "sat", "mat"},
	{"dog", "sat", "log"},
}

func words(ranked []model.RankedWord) []string {
	out := make([]string, len(ranked))
	for i, item := range ranked {
		out[i] = item.Word
	}
	return out
}

func TestRankWords_CatDogScenario(t *testing.T) {
	ranked := RankWords(catDog, catDog, 2, pagerank.DefaultConfig())

	require.Len(t, ranked, 5)
	assert.Equal(t, "sat", ranked[0].Word)
	// The four leaves tie and keep vocabulary order.
	assert.Equal(t, []string{"sat", "cat", "mat", "dog", "log"}, words(ranked))

	total := 0.0
	for i, item := range ranked {
		assert.GreaterOrEqual(t, item.Weight, 0.0)
		assert.LessOrEqual(t, item.Weight, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Weight, item.Weight, "ranking must be sorted")
		}
		total += item.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestRankWords_Empty(t *testing.T) {
	tests := []struct {
		name     string
		vertices [][]string
		edges    [][]string
	}{
		{"nil", nil, nil},
		{"no sentences", [][]string{}, [][]string{}},
		{"empty sentences", [][]string{{}}, [][]string{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankWords(tt.vertices, tt.edges, 2, pagerank.DefaultConfig())
			assert.NotNil(t, ranked)
			assert.Empty(t, ranked)
		})
	}
}

func TestRankWords_SingleWord(t *testing.T) {
	ranked := RankWords([][]string{{"solo"}}, [][]string{{"solo"}}, 2, pagerank.DefaultConfig())

	require.Len(t, ranked, 1)
	assert.Equal(t, "solo", ranked[0].Word)
	assert.InDelta(t, 1.0, ranked[0].Weight, 1e-12)
}

func TestRankWords_VertexAndEdgeViewsDiffer(t *testing.T) {
	vertices := [][]string{{"graph", "ranking"}, {"keyword", "graph"}}
	edges := [][]string{{"the", "graph", "ranking"}, {"a", "keyword", "of", "graph"}}

	ranked := RankWords(vertices, edges, 3, pagerank.DefaultConfig())

	require.Len(t, ranked, 3, "stopwords from the edge view never become vertices")
	assert.Equal(t, "graph", ranked[0].Word)
}

func TestRankWords_Deterministic(t *testing.T) {
	sentences := [][]string{
		{"alpha", "beta", "gamma", "delta"},
		{"beta", "delta", "epsilon"},
		{"zeta", "eta", "alpha", "theta"},
	}

	first := RankWords(sentences, sentences, 3, pagerank.DefaultConfig())
	for i := 0; i < 5; i++ {
		again := RankWords(sentences, sentences, 3, pagerank.DefaultConfig())
		assert.Equal(t, first, again)
	}
}

func TestSelectKeywords_Scenario(t *testing.T) {
	ranked := RankWords(catDog, catDog, 2, pagerank.DefaultConfig())

	selected := SelectKeywords(ranked, 2, 1)

	require.Len(t, selected, 2)
	assert.Equal(t, "sat", selected[0].Word)
}

func TestSelectKeywords(t *testing.T) {
	ranked := []model.RankedWord{
		{Word: "a", Weight: 0.30},
		{Word: "graph", Weight: 0.25},
		{Word: "of", Weight: 0.15},
		{Word: "ranking", Weight: 0.12},
		{Word: "nœud", Weight: 0.10},
		{Word: "x", Weight: 0.08},
	}

	tests := []struct {
		name       string
		num        int
		wordMinLen int
		want       []string
	}{
		{"all words", 10, 1, []string{"a", "graph", "of", "ranking", "nœud", "x"}},
		{"limit applies", 3, 1, []string{"a", "graph", "of"}},
		{"short words skipped, scan continues", 3, 3, []string{"graph", "ranking", "nœud"}},
		{"rune length not byte length", 10, 4, []string{"graph", "ranking", "nœud"}},
		{"nothing long enough", 5, 20, []string{}},
		{"zero requested", 0, 1, []string{}},
		{"negative requested", -1, 1, []string{}},
		{"zero min length accepts everything", 2, 0, []string{"a", "graph"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectKeywords(ranked, tt.num, tt.wordMinLen)
			assert.Equal(t, tt.want, words(got))
			assert.LessOrEqual(t, len(got), max(tt.num, 0))
			for _, item := range got {
				assert.GreaterOrEqual(t, utf8.RuneCountInString(item.Word), tt.wordMinLen)
			}
		})
	}
}

func TestSelectKeywords_PreservesRankOrder(t *testing.T) {
	ranked := RankWords(catDog, catDog, 2, pagerank.DefaultConfig())
	selected := SelectKeywords(ranked, 4, 3)

	pos := make(map[string]int)
	for i, item := range ranked {
		pos[item.Word] = i
	}
	for i := 1; i < len(selected); i++ {
		assert.Less(t, pos[selected[i-1].Word], pos[selected[i].Word])
	}
}

func TestNewRanker_NilLoggerIsSafe(t *testing.T) {
	ranker := NewRanker(pagerank.Config{}, nil)

	ranked := ranker.RankWords(catDog, catDog, 2)
	assert.Equal(t, "sat", ranked[0].Word)
}
