package graph

// MinWindow is the smallest co-occurrence window. Smaller values are clamped.
const MinWindow = 2

// Build creates the vocabulary from vertexSource and links every pair of
// tokens in edgeSource that sit less than window positions apart in the same
// sentence. Pairs with a token missing from the vocabulary are ignored, so
// edgeSource may be a different filtered view than vertexSource.
//
// Edges are binary: repeated co-occurrence does not increase the weight.
func Build(vertexSource, edgeSource [][]string, window int) (*Vocabulary, *Matrix) {
	if window < MinWindow {
		window = MinWindow
	}

	vocab := NewVocabulary()
	for _, sentence := range vertexSource {
		for _, word := range sentence {
			vocab.Add(word)
		}
	}

	matrix := NewMatrix(vocab.Len())
	if vocab.Len() == 0 {
		return vocab, matrix
	}

	for _, sentence := range edgeSource {
		for offset := 1; offset < window; offset++ {
			if offset >= len(sentence) {
				break
			}
			for i := 0; i+offset < len(sentence); i++ {
				a, okA := vocab.ID(sentence[i])
				b, okB := vocab.ID(sentence[i+offset])
				if okA && okB {
					matrix.SetWeight(a, b, 1.0)
				}
			}
		}
	}

	return vocab, matrix
}
