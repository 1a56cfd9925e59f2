package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/tokenizer"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	tok, err := tokenizer.New(nil)
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}
	return NewLoader(tok)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	writeFile(t, path, "# spam keywords\nbuy\ncheap\n\nmeeting\n")

	words, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}

	expected := []string{"buy", "cheap", "meeting"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("LoadVocabulary = %v, expected %v", words, expected)
	}
}

func TestLoadVocabularyKeepsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	writeFile(t, path, "buy\nbuy\n")

	words, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}

	// Duplicate detection belongs to the classifier, not the loader.
	if len(words) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(words))
	}

	if _, err := bayes.NewWordCounts(words); err == nil {
		t.Error("Expected the classifier to reject the duplicate vocabulary")
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	if _, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing vocabulary file")
	}
}

func TestLoadDocument(t *testing.T) {
	loader := newTestLoader(t)

	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "Buy CHEAP pills now!")

	tokens, err := loader.LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}

	expected := []string{"buy", "cheap", "pills", "now"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("LoadDocument = %v, expected %v", tokens, expected)
	}
}

func TestLoadDirectory(t *testing.T) {
	loader := newTestLoader(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "spam", "001.txt"), "buy cheap cheap")
	writeFile(t, filepath.Join(root, "ham", "001.txt"), "meeting buy")
	writeFile(t, filepath.Join(root, "ignored.txt"), "files outside categories are skipped")

	samples, err := loader.LoadDirectory(root)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}

	expected := []bayes.Sample{
		{Category: "ham", Tokens: []string{"meeting", "buy"}},
		{Category: "spam", Tokens: []string{"buy", "cheap", "cheap"}},
	}
	if !reflect.DeepEqual(samples, expected) {
		t.Errorf("LoadDirectory = %v, expected %v", samples, expected)
	}
}

func TestLoadDirectoryFeedsClassifier(t *testing.T) {
	loader := newTestLoader(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "spam", "001.txt"), "buy cheap cheap")
	writeFile(t, filepath.Join(root, "ham", "001.txt"), "meeting buy")

	samples, err := loader.LoadDirectory(root)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}

	model, err := bayes.Fit([]string{"buy", "cheap", "meeting"}, samples)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	scores := bayes.Classify(model, []string{"cheap", "cheap"})
	if scores[0].Category != "spam" {
		t.Errorf("Expected \"spam\" ranked first, got %q", scores[0].Category)
	}
}

func TestLoadDirectoryMissingRoot(t *testing.T) {
	loader := newTestLoader(t)
	if _, err := loader.LoadDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing corpus directory")
	}
}
