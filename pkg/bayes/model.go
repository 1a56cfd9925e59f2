package bayes

import "fmt"

// EstimateProbabilities converts aggregated word counts into per-category
// word probabilities. For a category with total count T, a word counted n
// times gets probability n/T, except that a zero count falls back to 1/T so
// that no word ever carries probability zero. A zero probability would make
// any document containing that word score as impossible under the category.
//
// The fallback means a category's probabilities need not sum to 1 whenever
// any of its counts is zero. That is intentional and callers must not
// renormalize.
func EstimateProbabilities(counts CategoryCounts) (CategoryProbabilities, error) {
	model := make(CategoryProbabilities, len(counts))

	for category, perWord := range counts {
		total := perWord.Total()
		if total == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategoryModel, category)
		}

		probs := make(WordProbabilities, len(perWord))
		for word, n := range perWord {
			if n > 0 {
				probs[word] = float64(n) / float64(total)
			} else {
				probs[word] = 1 / float64(total)
			}
		}
		model[category] = probs
	}

	return model, nil
}
