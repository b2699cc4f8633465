package textrank

import "math"

const similarityEpsilon = 1e-12

// SimilarityFunc scores how related two token lists are. It must be
// symmetric and non-negative.
type SimilarityFunc func(a, b []string) float64

// DefaultSimilarity counts the distinct tokens the two lists share and
// normalises by ln|a| + ln|b|. Repeats do not add weight. Lists that share
// nothing, or whose lengths make the denominator vanish (empty or single-token
// lists), score 0.
func DefaultSimilarity(a, b []string) float64 {
	inA := make(map[string]struct{}, len(a))
	for _, tok := range a {
		inA[tok] = struct{}{}
	}

	shared := make(map[string]struct{})
	for _, tok := range b {
		if _, ok := inA[tok]; ok {
			shared[tok] = struct{}{}
		}
	}

	coOccurrence := float64(len(shared))
	if math.Abs(coOccurrence) <= similarityEpsilon {
		return 0
	}

	denominator := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if math.Abs(denominator) < similarityEpsilon {
		return 0
	}
	return coOccurrence / denominator
}
