package corpus

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/tokenizer"
)

// RedisConfig holds Redis corpus storage configuration.
type RedisConfig struct {
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`
}

// DefaultRedisConfig returns default Redis configuration.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		RedisURL:    "redis://localhost:6379",
		KeyPrefix:   "textcat:corpus",
		DatabaseNum: 0,
	}
}

// RedisStore keeps a labeled training corpus in Redis: the vocabulary in a
// list, the category set in a set, and each category's raw documents in a
// per-category list. Documents are stored as raw text and tokenized on load,
// so the store and the filesystem loader feed the classifier identically.
type RedisStore struct {
	client    *redis.Client
	config    *RedisConfig
	tokenizer *tokenizer.Tokenizer
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, config *RedisConfig, tok *tokenizer.Tokenizer) (*RedisStore, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	opt.DB = config.DatabaseNum
	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis connection failed: %v", err)
	}

	return &RedisStore{
		client:    client,
		config:    config,
		tokenizer: tok,
	}, nil
}

// LoadVocabulary returns the stored vocabulary in insertion order.
func (s *RedisStore) LoadVocabulary(ctx context.Context) ([]string, error) {
	words, err := s.client.LRange(ctx, s.vocabularyKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %v", err)
	}
	return words, nil
}

// SaveVocabulary replaces the stored vocabulary.
func (s *RedisStore) SaveVocabulary(ctx context.Context, words []string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.vocabularyKey())
	for _, word := range words {
		pipe.RPush(ctx, s.vocabularyKey(), word)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save vocabulary: %v", err)
	}
	return nil
}

// AddDocument appends a raw document under a category.
func (s *RedisStore) AddDocument(ctx context.Context, category bayes.Category, text string) error {
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, s.categoriesKey(), string(category))
	pipe.RPush(ctx, s.documentsKey(category), text)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add document: %v", err)
	}
	return nil
}

// LoadSamples tokenizes every stored document into training samples.
// Categories are visited in sorted order so repeated loads yield samples in
// the same order.
func (s *RedisStore) LoadSamples(ctx context.Context) ([]bayes.Sample, error) {
	categories, err := s.client.SMembers(ctx, s.categoriesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %v", err)
	}
	sort.Strings(categories)

	var samples []bayes.Sample
	for _, category := range categories {
		docs, err := s.client.LRange(ctx, s.documentsKey(bayes.Category(category)), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load documents for %q: %v", category, err)
		}

		for _, text := range docs {
			tokens, err := s.tokenizer.Tokenize(text)
			if err != nil {
				return nil, fmt.Errorf("failed to tokenize document in %q: %v", category, err)
			}
			samples = append(samples, bayes.Sample{
				Category: bayes.Category(category),
				Tokens:   tokens,
			})
		}
	}

	return samples, nil
}

// Reset deletes the stored vocabulary and corpus.
func (s *RedisStore) Reset(ctx context.Context) error {
	categories, err := s.client.SMembers(ctx, s.categoriesKey()).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.vocabularyKey())
	pipe.Del(ctx, s.categoriesKey())
	for _, category := range categories {
		pipe.Del(ctx, s.documentsKey(bayes.Category(category)))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) vocabularyKey() string {
	return fmt.Sprintf("%s:vocabulary", s.config.KeyPrefix)
}

func (s *RedisStore) categoriesKey() string {
	return fmt.Sprintf("%s:categories", s.config.KeyPrefix)
}

func (s *RedisStore) documentsKey(category bayes.Category) string {
	return fmt.Sprintf("%s:docs:%s", s.config.KeyPrefix, category)
}
