package bayes

// CountCategories aggregates word counts per category over a training set.
// Each distinct category gets its own copy of the zeroed template, then every
// token of every document labeled with that category increments the matching
// counter. Tokens outside the template's key set are ignored: words the
// vocabulary does not track are invisible to the model.
//
// Categories that never appear in samples never appear in the result, so an
// empty training set yields an empty CategoryCounts.
func CountCategories(samples []Sample, template WordCounts) CategoryCounts {
	counts := make(CategoryCounts)

	for _, sample := range samples {
		perWord, ok := counts[sample.Category]
		if !ok {
			perWord = template.clone()
			counts[sample.Category] = perWord
		}

		for _, token := range sample.Tokens {
			if _, tracked := perWord[token]; tracked {
				perWord[token]++
			}
		}
	}

	return counts
}
