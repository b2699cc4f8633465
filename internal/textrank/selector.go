package textrank

import (
	"unicode/utf8"

	"github.com/gcbaptista/go-textrank/model"
)

// SelectKeywords walks the ranking in order and keeps up to num words whose
// length in runes is at least wordMinLen. Shorter words are skipped without
// stopping the scan, so the result keeps the ranking order.
func SelectKeywords(ranked []model.RankedWord, num, wordMinLen int) []model.RankedWord {
	result := make([]model.RankedWord, 0, min(max(num, 0), len(ranked)))
	for _, item := range ranked {
		if len(result) >= num {
			break
		}
		if utf8.RuneCountInString(item.Word) >= wordMinLen {
			result = append(result, item)
		}
	}
	return result
}

// SelectSentences keeps up to num ranked sentences whose length in runes is
// at least sentenceMinLen, in ranking order.
func SelectSentences(ranked []model.RankedSentence, num, sentenceMinLen int) []model.RankedSentence {
	result := make([]model.RankedSentence, 0, min(max(num, 0), len(ranked)))
	for _, item := range ranked {
		if len(result) >= num {
			break
		}
		if utf8.RuneCountInString(item.Sentence) >= sentenceMinLen {
			result = append(result, item)
		}
	}
	return result
}
