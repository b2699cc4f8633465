// Package pagerank computes PageRank importance scores over an undirected
// weighted graph using damped power iteration.
//
// Each iteration gives every node the teleportation mass (1-d)/N plus d times
// the score flowing in from its neighbours, where a neighbour j sends
// x[j]*w(j,i)/out(j) along each edge. Dangling nodes (out(j) == 0) spread
// their whole score uniformly over all nodes, so the vector keeps summing to 1
// on every iteration. Iteration stops once the L1 distance between successive
// vectors drops below Tolerance, or after MaxIterations.
package pagerank

import (
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 100
)

// Graph is the weighted adjacency the solver ranks. Weights must be
// non-negative and Weight(i, j) == Weight(j, i).
type Graph interface {
	Len() int
	Weight(i, j int) float64
}

// Config holds the solver parameters. Zero fields take the defaults.
type Config struct {
	Damping       float64 `json:"damping" yaml:"damping"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
}

// DefaultConfig returns the solver defaults.
func DefaultConfig() Config {
	return Config{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithDefaults returns a copy of c with non-positive fields replaced by
// defaults. Settings are validated before they reach the solver.
func (c Config) WithDefaults() Config {
	if c.Damping <= 0 {
		c.Damping = DefaultDamping
	}
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	return c
}

// Result is the outcome of a Rank call. Scores is indexed by node id.
type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// Rank runs damped power iteration on g. It never fails: an empty graph
// yields no scores, and the iteration cap guarantees termination.
func Rank(g Graph, cfg Config) Result {
	cfg = cfg.WithDefaults()
	n := g.Len()
	if n == 0 {
		return Result{Scores: []float64{}, Converged: true}
	}

	nf := float64(n)
	d := cfg.Damping

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i] += g.Weight(i, j)
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / nf
	}
	next := make([]float64, n)

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		dangling := 0.0
		for j, w := range out {
			if w == 0 {
				dangling += x[j]
			}
		}

		base := (1-d)/nf + d*dangling/nf
		for i := range next {
			next[i] = base
		}

		for j := 0; j < n; j++ {
			if out[j] == 0 {
				continue
			}
			share := d * x[j] / out[j]
			for i := 0; i < n; i++ {
				if w := g.Weight(j, i); w != 0 {
					next[i] += share * w
				}
			}
		}

		delta := floats.Distance(next, x, 1)
		x, next = next, x
		if delta < cfg.Tolerance {
			return Result{Scores: x, Iterations: iter, Converged: true}
		}
	}

	return Result{Scores: x, Iterations: cfg.MaxIterations, Converged: false}
}

// Sum returns the total of a score vector.
func Sum(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	return floats.Sum(scores)
}
