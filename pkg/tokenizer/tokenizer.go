// Package tokenizer turns raw text into the word token sequences the
// classifier consumes. The classifier itself never sees raw text.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tebeka/snowball"
)

// Config holds tokenization settings.
type Config struct {
	MinWordLength int    `yaml:"min_word_length"`
	MaxWordLength int    `yaml:"max_word_length"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Stemming      bool   `yaml:"stemming"`
	StemLanguage  string `yaml:"stem_language"`
}

// DefaultConfig returns default tokenization settings.
func DefaultConfig() *Config {
	return &Config{
		MinWordLength: 2,
		MaxWordLength: 32,
		CaseSensitive: false,
		Stemming:      false,
		StemLanguage:  "english",
	}
}

// Tokenizer extracts word tokens from text.
type Tokenizer struct {
	config *Config
	wordRe *regexp.Regexp
}

// New creates a tokenizer for the given settings.
func New(config *Config) (*Tokenizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if config.MinWordLength < 1 {
		return nil, fmt.Errorf("min_word_length must be >= 1, got %d", config.MinWordLength)
	}
	if config.MaxWordLength < config.MinWordLength {
		return nil, fmt.Errorf("max_word_length must be >= min_word_length")
	}

	wordRe, err := regexp.Compile(fmt.Sprintf(`\b[a-zA-Z]{%d,%d}\b`,
		config.MinWordLength, config.MaxWordLength))
	if err != nil {
		return nil, fmt.Errorf("failed to compile word pattern: %v", err)
	}

	return &Tokenizer{config: config, wordRe: wordRe}, nil
}

// Tokenize extracts word tokens from text in order of appearance.
// Duplicates are kept: the classifier counts multiplicity.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	if !t.config.CaseSensitive {
		text = strings.ToLower(text)
	}

	words := t.wordRe.FindAllString(text, -1)

	if t.config.Stemming && len(words) > 0 {
		stemmer, err := snowball.New(t.config.StemLanguage)
		if err != nil {
			return nil, fmt.Errorf("failed to create stemmer: %v", err)
		}
		defer stemmer.Close()

		stemmed := make([]string, len(words))
		for i, word := range words {
			stemmed[i] = stemmer.Stem(word)
		}
		words = stemmed
	}

	return words, nil
}
