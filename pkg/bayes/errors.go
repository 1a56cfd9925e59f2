package bayes

import "errors"

var (
	// ErrDuplicateWord indicates a vocabulary containing the same word twice.
	ErrDuplicateWord = errors.New("duplicate vocabulary word")

	// ErrEmptyCategoryModel indicates a category whose documents contain no
	// vocabulary words at all, so no probability model can be derived for it.
	ErrEmptyCategoryModel = errors.New("category has no vocabulary word occurrences")

	// ErrUnknownCategory indicates a scoring request against a category
	// that is not part of the fitted model.
	ErrUnknownCategory = errors.New("unknown category")
)
