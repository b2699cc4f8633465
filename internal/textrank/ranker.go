// Package textrank ranks words and sentences of a segmented text with
// TextRank and merges adjacent top-ranked words into keyphrases.
//
// Every call builds its graph from scratch; a Ranker holds only the solver
// settings and a logger, so it is safe for concurrent use.
package textrank

import (
	"sort"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-textrank/internal/graph"
	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/internal/pagerank"
	"github.com/gcbaptista/go-textrank/model"
)

// Ranker runs TextRank with fixed solver settings.
type Ranker struct {
	solver pagerank.Config
	logger *zap.Logger
}

// NewRanker creates a ranker. Zero solver fields take the pagerank defaults;
// a nil logger disables logging.
func NewRanker(solver pagerank.Config, logger *zap.Logger) *Ranker {
	return &Ranker{
		solver: solver.WithDefaults(),
		logger: logging.OrNop(logger),
	}
}

// RankWords builds the word co-occurrence graph from the two token views and
// returns every vocabulary token sorted by weight, highest first. Equal
// weights keep vocabulary order.
func (r *Ranker) RankWords(vertexSource, edgeSource [][]string, window int) []model.RankedWord {
	vocab, matrix := graph.Build(vertexSource, edgeSource, window)
	r.logger.Debug("word graph built",
		zap.Int("vocabulary", vocab.Len()),
		zap.Int("edges", matrix.EdgeCount()),
		zap.Int("window", window))

	scores := r.rank("words", matrix)

	words := make([]model.RankedWord, len(scores))
	for id, score := range scores {
		words[id] = model.RankedWord{Word: vocab.Word(id), Weight: score}
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Weight > words[j].Weight
	})
	return words
}

func (r *Ranker) rank(kind string, g pagerank.Graph) []float64 {
	result := pagerank.Rank(g, r.solver)
	r.logger.Debug("pagerank finished",
		zap.String("graph", kind),
		zap.Int("nodes", g.Len()),
		zap.Int("iterations", result.Iterations),
		zap.Bool("converged", result.Converged))
	return result.Scores
}

// RankWords ranks words with the given solver settings and no logging.
func RankWords(vertexSource, edgeSource [][]string, window int, solver pagerank.Config) []model.RankedWord {
	return NewRanker(solver, nil).RankWords(vertexSource, edgeSource, window)
}
