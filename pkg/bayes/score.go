package bayes

import "math"

// LogLikelihood computes the log-likelihood that the document was generated
// by the category model behind probs: the sum over the document's tokens of
// log10 of each token's probability. Tokens outside the model's vocabulary
// contribute nothing. Base-10 is the fixed convention so scores stay
// bit-for-bit comparable across runs.
//
// Every probability is at most 1, so the result is always <= 0; more
// negative means less likely. Tokens are visited in document order, which
// keeps the floating-point summation deterministic.
func LogLikelihood(tokens []string, probs WordProbabilities) float64 {
	var score float64
	for _, token := range tokens {
		if p, tracked := probs[token]; tracked {
			score += math.Log10(p)
		}
	}
	return score
}
