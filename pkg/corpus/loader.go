// Package corpus loads vocabularies and labeled training documents from
// the filesystem or Redis and hands them to the classifier as tokenized
// samples.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/tokenizer"
)

// LoadVocabulary reads a vocabulary file: one word per line, with blank
// lines and #-comments skipped. Duplicate words are passed through; the
// classifier rejects them at fitting time.
func LoadVocabulary(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %v", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %v", err)
	}

	return words, nil
}

// Loader reads training corpora and query documents from disk.
type Loader struct {
	tokenizer *tokenizer.Tokenizer
}

// NewLoader creates a loader that tokenizes documents with tok.
func NewLoader(tok *tokenizer.Tokenizer) *Loader {
	return &Loader{tokenizer: tok}
}

// LoadDocument reads and tokenizes a single text file.
func (l *Loader) LoadDocument(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %v", err)
	}
	return l.tokenizer.Tokenize(string(data))
}

// LoadDirectory reads a training corpus laid out as one subdirectory per
// category, each containing one text file per document:
//
//	corpus/
//	  spam/001.txt
//	  spam/002.txt
//	  ham/001.txt
//
// Files directly under root are ignored. Categories are visited in sorted
// order so repeated loads yield samples in the same order.
func (l *Loader) LoadDirectory(root string) ([]bayes.Sample, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %v", err)
	}

	var categories []string
	for _, entry := range entries {
		if entry.IsDir() {
			categories = append(categories, entry.Name())
		}
	}
	sort.Strings(categories)

	var samples []bayes.Sample
	for _, category := range categories {
		dir := filepath.Join(root, category)

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}

			tokens, err := l.LoadDocument(path)
			if err != nil {
				return fmt.Errorf("%s: %v", path, err)
			}

			samples = append(samples, bayes.Sample{
				Category: bayes.Category(category),
				Tokens:   tokens,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load category %q: %v", category, err)
		}
	}

	return samples, nil
}
