// Package bayes implements a multinomial Naive Bayes text classifier over a
// fixed vocabulary. Training counts vocabulary word occurrences per category,
// fitting turns counts into word probabilities, and classification ranks
// categories by the log-likelihood of a query document under each model.
//
// The pipeline is purely functional: every stage takes immutable inputs and
// returns fresh outputs, so fitted models are safe to share across
// goroutines.
package bayes

import (
	"fmt"
	"sort"
)

// CategoryScore pairs a category with its log-likelihood for one document.
type CategoryScore struct {
	Category Category
	Score    float64
}

// Fit trains one word-probability model per category appearing in the
// training set. It is deterministic given identical inputs, and an empty
// training set yields an empty model.
//
// Fit fails with ErrDuplicateWord if the vocabulary repeats a word, and with
// ErrEmptyCategoryModel if any category's documents contain no vocabulary
// words at all.
func Fit(vocabulary []string, samples []Sample) (CategoryProbabilities, error) {
	template, err := NewWordCounts(vocabulary)
	if err != nil {
		return nil, err
	}
	return EstimateProbabilities(CountCategories(samples, template))
}

// Classify scores the document against every category in the fitted model
// and returns the scores ranked best-first. Ties break on category name so
// the ordering is deterministic. Each category appears exactly once,
// regardless of how many training documents carried its label.
func Classify(model CategoryProbabilities, tokens []string) []CategoryScore {
	scores := make([]CategoryScore, 0, len(model))
	for category, probs := range model {
		scores = append(scores, CategoryScore{
			Category: category,
			Score:    LogLikelihood(tokens, probs),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Category < scores[j].Category
	})

	return scores
}

// ScoreCategory scores the document under a single category's model. It
// fails with ErrUnknownCategory if the category was never fitted.
func ScoreCategory(model CategoryProbabilities, category Category, tokens []string) (float64, error) {
	probs, ok := model[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return LogLikelihood(tokens, probs), nil
}
