package textrank

import (
	"strings"

	"github.com/gcbaptista/go-textrank/model"
)

// KeyphraseOptions controls keyphrase extraction.
type KeyphraseOptions struct {
	KeywordsNum int // size of the keyword pool
	MinWordLen  int // minimum keyword length in runes
	MinOccurNum int // minimum occurrences of the phrase in the raw text
}

// DefaultKeyphraseOptions returns the extraction defaults.
func DefaultKeyphraseOptions() KeyphraseOptions {
	return KeyphraseOptions{KeywordsNum: 12, MinWordLen: 1, MinOccurNum: 2}
}

// ExtractKeyphrases merges runs of at least two consecutive top-ranked words
// in the unfiltered token stream into phrases, joining the tokens without a
// separator. A phrase is kept when it occurs at least MinOccurNum times as a
// substring of text. Phrases are returned in the order they were first found.
func ExtractKeyphrases(ranked []model.RankedWord, unfiltered [][]string, text string, opts KeyphraseOptions) []string {
	keywords := make(map[string]struct{})
	for _, item := range SelectKeywords(ranked, opts.KeywordsNum, opts.MinWordLen) {
		keywords[item.Word] = struct{}{}
	}

	var candidates []string
	seen := make(map[string]struct{})
	flush := func(run []string) {
		if len(run) < 2 {
			return
		}
		phrase := strings.Join(run, "")
		if _, dup := seen[phrase]; dup {
			return
		}
		seen[phrase] = struct{}{}
		candidates = append(candidates, phrase)
	}

	for _, sentence := range unfiltered {
		var run []string
		for _, word := range sentence {
			if _, ok := keywords[word]; ok {
				run = append(run, word)
				continue
			}
			flush(run)
			run = run[:0]
		}
		flush(run)
	}

	phrases := make([]string, 0, len(candidates))
	for _, phrase := range candidates {
		if phrase == "" {
			continue
		}
		if strings.Count(text, phrase) >= opts.MinOccurNum {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}
