package bayes

import "fmt"

// Category labels a class of documents (e.g. "spam", "ham").
type Category string

// Sample is a single labeled training document: an ordered sequence of
// tokens together with the category it belongs to.
type Sample struct {
	Category Category
	Tokens   []string
}

// NewSample returns a new labeled training document.
func NewSample(category Category, tokens ...string) Sample {
	return Sample{
		Category: category,
		Tokens:   tokens,
	}
}

// WordCounts maps each vocabulary word to a non-negative occurrence count.
// The key set is the vocabulary: it is fixed at construction time and only
// the values change during counting.
type WordCounts map[string]int

// CategoryCounts holds one WordCounts per category observed in training.
// Every map shares the same key set.
type CategoryCounts map[Category]WordCounts

// WordProbabilities maps each vocabulary word to its estimated probability
// under one category's model. Values are strictly positive and at most 1.
type WordProbabilities map[string]float64

// CategoryProbabilities holds one fitted WordProbabilities per category.
type CategoryProbabilities map[Category]WordProbabilities

// NewWordCounts builds a zeroed count map over the given vocabulary.
// A word appearing twice in the vocabulary is ambiguous, so it is
// rejected with ErrDuplicateWord rather than silently collapsed.
func NewWordCounts(vocabulary []string) (WordCounts, error) {
	counts := make(WordCounts, len(vocabulary))
	for _, word := range vocabulary {
		if _, seen := counts[word]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, word)
		}
		counts[word] = 0
	}
	return counts, nil
}

// Total returns the sum of all counts, i.e. the number of vocabulary word
// occurrences observed so far.
func (wc WordCounts) Total() int {
	var total int
	for _, n := range wc {
		total += n
	}
	return total
}

// clone returns an independent copy sharing no storage with the receiver.
func (wc WordCounts) clone() WordCounts {
	copied := make(WordCounts, len(wc))
	for word, n := range wc {
		copied[word] = n
	}
	return copied
}
