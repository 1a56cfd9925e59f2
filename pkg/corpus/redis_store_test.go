package corpus

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/tokenizer"
)

var testRedisConfig = &RedisConfig{
	RedisURL:    "redis://localhost:6379",
	KeyPrefix:   "textcat:test:corpus",
	DatabaseNum: 1, // Use separate database for testing
}

// isRedisAvailable checks whether a local Redis instance is reachable.
func isRedisAvailable() bool {
	opt, err := redis.ParseURL(testRedisConfig.RedisURL)
	if err != nil {
		return false
	}

	client := redis.NewClient(opt)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	return client.Ping(ctx).Err() == nil
}

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()

	tok, err := tokenizer.New(nil)
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}

	store, err := NewRedisStore(context.Background(), testRedisConfig, tok)
	if err != nil {
		t.Fatalf("Failed to create Redis store: %v", err)
	}

	t.Cleanup(func() {
		store.Reset(context.Background())
		store.Close()
	})

	return store
}

func TestRedisStoreVocabularyRoundTrip(t *testing.T) {
	if !isRedisAvailable() {
		t.Skip("Redis not available, skipping test")
	}

	store := newTestStore(t)
	ctx := context.Background()

	words := []string{"buy", "cheap", "meeting"}
	if err := store.SaveVocabulary(ctx, words); err != nil {
		t.Fatalf("SaveVocabulary failed: %v", err)
	}

	loaded, err := store.LoadVocabulary(ctx)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}

	if len(loaded) != len(words) {
		t.Fatalf("Expected %d words, got %d", len(words), len(loaded))
	}
	for i, word := range words {
		if loaded[i] != word {
			t.Errorf("Word %d = %q, expected %q (order must be preserved)", i, loaded[i], word)
		}
	}
}

func TestRedisStoreSamples(t *testing.T) {
	if !isRedisAvailable() {
		t.Skip("Redis not available, skipping test")
	}

	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddDocument(ctx, "spam", "buy cheap cheap"); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	if err := store.AddDocument(ctx, "ham", "meeting buy"); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}

	samples, err := store.LoadSamples(ctx)
	if err != nil {
		t.Fatalf("LoadSamples failed: %v", err)
	}

	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}

	// Categories come back sorted.
	if samples[0].Category != bayes.Category("ham") {
		t.Errorf("First sample category = %q, expected \"ham\"", samples[0].Category)
	}
	if samples[1].Category != bayes.Category("spam") {
		t.Errorf("Second sample category = %q, expected \"spam\"", samples[1].Category)
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

func TestRedisStoreReset(t *testing.T) {
	if !isRedisAvailable() {
		t.Skip("Redis not available, skipping test")
	}

	store := newTestStore(t)
	ctx := context.Background()

	store.SaveVocabulary(ctx, []string{"buy"})
	store.AddDocument(ctx, "spam", "buy buy")

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	words, err := store.LoadVocabulary(ctx)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected empty vocabulary after reset, got %v", words)
	}

	samples, err := store.LoadSamples(ctx)
	if err != nil {
		t.Fatalf("LoadSamples failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Expected no samples after reset, got %d", len(samples))
	}
}
