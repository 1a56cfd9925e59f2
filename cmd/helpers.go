package cmd

import (
	"context"
	"fmt"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/config"
	"github.com/textcat/text-classifier/pkg/corpus"
	"github.com/textcat/text-classifier/pkg/tokenizer"
)

// newTokenizer builds a tokenizer from the loaded configuration.
func newTokenizer(cfg *config.Config) (*tokenizer.Tokenizer, error) {
	return tokenizer.New(&tokenizer.Config{
		MinWordLength: cfg.Tokenizer.MinWordLength,
		MaxWordLength: cfg.Tokenizer.MaxWordLength,
		CaseSensitive: cfg.Tokenizer.CaseSensitive,
		Stemming:      cfg.Tokenizer.Stemming,
		StemLanguage:  cfg.Tokenizer.StemLanguage,
	})
}

// newRedisStore builds a Redis corpus store from the loaded configuration.
func newRedisStore(ctx context.Context, cfg *config.Config, tok *tokenizer.Tokenizer) (*corpus.RedisStore, error) {
	return corpus.NewRedisStore(ctx, &corpus.RedisConfig{
		RedisURL:    cfg.Redis.RedisURL,
		KeyPrefix:   cfg.Redis.KeyPrefix,
		DatabaseNum: cfg.Redis.DatabaseNum,
	}, tok)
}

// loadTrainingSet reads the vocabulary and the labeled corpus from the
// configured source.
func loadTrainingSet(ctx context.Context, cfg *config.Config, tok *tokenizer.Tokenizer) ([]string, []bayes.Sample, error) {
	switch cfg.Corpus.Source {
	case "directory":
		vocabulary, err := corpus.LoadVocabulary(cfg.Corpus.VocabularyPath)
		if err != nil {
			return nil, nil, err
		}
		samples, err := corpus.NewLoader(tok).LoadDirectory(cfg.Corpus.CorpusDir)
		if err != nil {
			return nil, nil, err
		}
		return vocabulary, samples, nil

	case "redis":
		store, err := newRedisStore(ctx, cfg, tok)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()

		vocabulary, err := store.LoadVocabulary(ctx)
		if err != nil {
			return nil, nil, err
		}
		samples, err := store.LoadSamples(ctx)
		if err != nil {
			return nil, nil, err
		}
		return vocabulary, samples, nil

	default:
		return nil, nil, fmt.Errorf("unknown corpus source: %s", cfg.Corpus.Source)
	}
}
