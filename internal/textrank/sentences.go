package textrank

import (
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-textrank/internal/graph"
	"github.com/gcbaptista/go-textrank/internal/pagerank"
	"github.com/gcbaptista/go-textrank/model"
)

// parallelRowThreshold is the sentence count from which similarity rows are
// computed concurrently.
const parallelRowThreshold = 64

// SentenceOptions tunes the sentence graph.
type SentenceOptions struct {
	// Similarity scores a pair of sentences; nil selects DefaultSimilarity.
	Similarity SimilarityFunc
	// ExcludeSelfSimilarity leaves the diagonal at zero. By default every
	// sentence is also compared with itself, which adds a self-loop.
	ExcludeSelfSimilarity bool
}

// RankSentences builds the complete similarity graph over the sentences and
// returns them sorted by weight, highest first. tokens[i] holds the tokens of
// sentences[i] and is only used for similarity. Equal weights keep input
// order.
func (r *Ranker) RankSentences(sentences []string, tokens [][]string, opts SentenceOptions) []model.RankedSentence {
	n := min(len(sentences), len(tokens))
	if len(sentences) != len(tokens) {
		r.logger.Warn("sentence and token counts differ, ranking the common prefix",
			zap.Int("sentences", len(sentences)),
			zap.Int("token_lists", len(tokens)))
	}

	matrix := similarityMatrix(tokens[:n], opts)
	r.logger.Debug("sentence graph built",
		zap.Int("sentences", n),
		zap.Int("edges", matrix.EdgeCount()),
		zap.Bool("self_similarity", !opts.ExcludeSelfSimilarity))

	scores := r.rank("sentences", matrix)

	ranked := make([]model.RankedSentence, len(scores))
	for i, score := range scores {
		ranked[i] = model.RankedSentence{Index: i, Sentence: sentences[i], Weight: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	return ranked
}

func similarityMatrix(tokens [][]string, opts SentenceOptions) *graph.Matrix {
	sim := opts.Similarity
	if sim == nil {
		sim = DefaultSimilarity
	}

	n := len(tokens)
	rows := make([][]float64, n)
	fill := func(x int) {
		start := x
		if opts.ExcludeSelfSimilarity {
			start = x + 1
		}
		row := make([]float64, n)
		for y := start; y < n; y++ {
			row[y] = sim(tokens[x], tokens[y])
		}
		rows[x] = row
	}

	if n >= parallelRowThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for x := 0; x < n; x++ {
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("similarity row %d: %v", x, r)
					}
				}()
				fill(x)
				return nil
			})
		}
		// A failing similarity func is raised again on the caller's
		// goroutine, where it can be recovered.
		if err := g.Wait(); err != nil {
			panic(err)
		}
	} else {
		for x := 0; x < n; x++ {
			fill(x)
		}
	}

	matrix := graph.NewMatrix(n)
	for x := 0; x < n; x++ {
		for y := x; y < n; y++ {
			if w := rows[x][y]; w != 0 {
				matrix.SetWeight(x, y, w)
			}
		}
	}
	return matrix
}

// RankSentences ranks sentences with the given solver settings and no logging.
func RankSentences(sentences []string, tokens [][]string, opts SentenceOptions, solver pagerank.Config) []model.RankedSentence {
	return NewRanker(solver, nil).RankSentences(sentences, tokens, opts)
}
