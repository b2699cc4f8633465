package model

import "time"

// RankedWord is a vocabulary token with its TextRank weight.
type RankedWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// RankedSentence is a sentence with its position in the input and its TextRank weight.
type RankedSentence struct {
	Index    int     `json:"index"`
	Sentence string  `json:"sentence"`
	Weight   float64 `json:"weight"`
}

// Segmentation is the output of a segmenter. The three token views are
// aligned with Sentences: view[i] holds the tokens of Sentences[i].
type Segmentation struct {
	Sentences        []string   `json:"sentences"`
	WordsNoFilter    [][]string `json:"words_no_filter"`
	WordsNoStopWords [][]string `json:"words_no_stop_words"`
	WordsAllFilters  [][]string `json:"words_all_filters"`
}

// Analysis is the complete result of analyzing one text.
type Analysis struct {
	ID               string           `json:"id"`
	Words            []RankedWord     `json:"words"`
	Keywords         []RankedWord     `json:"keywords"`
	Keyphrases       []string         `json:"keyphrases"`
	Sentences        []RankedSentence `json:"sentences"`
	KeySentences     []RankedSentence `json:"key_sentences"`
	SentenceCount    int              `json:"sentence_count"`
	VocabularySize   int              `json:"vocabulary_size"`
	CreatedAt        time.Time        `json:"created_at"`
	ProcessingTimeMs float64          `json:"processing_time_ms"`
}
