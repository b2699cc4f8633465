// Package graph builds the co-occurrence structures TextRank ranks over:
// a dense token vocabulary and a symmetric weighted adjacency matrix.
package graph

// Vocabulary maps token strings to dense ids 0..N-1 and back.
// Ids are assigned in first-occurrence order.
type Vocabulary struct {
	index map[string]int
	words []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		index: make(map[string]int),
		words: make([]string, 0),
	}
}

// Add returns the id of word, assigning the next free id if it is new.
func (v *Vocabulary) Add(word string) int {
	if id, exists := v.index[word]; exists {
		return id
	}
	id := len(v.words)
	v.index[word] = id
	v.words = append(v.words, word)
	return id
}

// ID returns the id of word and whether it is known.
func (v *Vocabulary) ID(word string) (int, bool) {
	id, exists := v.index[word]
	return id, exists
}

// Word returns the token for id. It panics if id is out of range.
func (v *Vocabulary) Word(id int) string {
	return v.words[id]
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns the tokens in id order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}
