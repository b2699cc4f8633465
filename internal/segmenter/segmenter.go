// Package segmenter turns raw text into sentences and the three aligned
// token views the rankers consume.
//
// Segmentation is deliberately simple: a statistical English sentence
// splitter, a secondary split on clause punctuation, letter/digit tokens and
// a stopword list.
package segmenter

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/gcbaptista/go-textrank/model"
)

// clauseDelimiters further split the sentences produced by the sentence
// tokenizer.
const clauseDelimiters = "?!;…。！？；\n"

// Segmenter splits text into sentences and tokens. It is safe for
// concurrent use.
type Segmenter struct {
	mu        sync.Mutex // guards tokenizer
	tokenizer *sentences.DefaultSentenceTokenizer
	stopwords map[string]struct{}
}

// New creates a segmenter with the given stopwords. A nil list selects the
// built-in English list; an empty non-nil list disables stopword removal.
func New(stopwords []string) (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	if stopwords == nil {
		stopwords = defaultStopwords
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(Normalize(w))] = struct{}{}
	}

	return &Segmenter{tokenizer: tokenizer, stopwords: set}, nil
}

// NewFromFile creates a segmenter whose stopwords are read from path. An
// empty path selects the built-in list.
func NewFromFile(path string) (*Segmenter, error) {
	if path == "" {
		return New(nil)
	}
	words, err := LoadStopwords(path)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []string{}
	}
	return New(words)
}

// Segment splits text into sentences and produces the three token views.
// Every view has exactly one token list per sentence; a sentence whose tokens
// are all filtered out keeps an empty list.
func (s *Segmenter) Segment(text string, lower bool) model.Segmentation {
	sentenceTexts := s.splitSentences(Normalize(text))

	seg := model.Segmentation{
		Sentences:        make([]string, 0, len(sentenceTexts)),
		WordsNoFilter:    make([][]string, 0, len(sentenceTexts)),
		WordsNoStopWords: make([][]string, 0, len(sentenceTexts)),
		WordsAllFilters:  make([][]string, 0, len(sentenceTexts)),
	}

	for _, sentence := range sentenceTexts {
		tokens := Tokenize(sentence, lower)

		noStop := make([]string, 0, len(tokens))
		allFilters := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if s.IsStopword(tok) {
				continue
			}
			noStop = append(noStop, tok)
			if isContentWord(tok) {
				allFilters = append(allFilters, tok)
			}
		}

		seg.Sentences = append(seg.Sentences, sentence)
		seg.WordsNoFilter = append(seg.WordsNoFilter, tokens)
		seg.WordsNoStopWords = append(seg.WordsNoStopWords, noStop)
		seg.WordsAllFilters = append(seg.WordsAllFilters, allFilters)
	}
	return seg
}

// IsStopword reports whether the token is in the stopword list, ignoring case.
func (s *Segmenter) IsStopword(token string) bool {
	_, ok := s.stopwords[strings.ToLower(token)]
	return ok
}

func (s *Segmenter) splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	tokenized := s.tokenizer.Tokenize(text)
	s.mu.Unlock()

	var out []string
	for _, sent := range tokenized {
		out = append(out, splitClauses(sent.Text)...)
	}
	return out
}
