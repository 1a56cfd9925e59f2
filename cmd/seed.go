package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/config"
	"github.com/textcat/text-classifier/pkg/corpus"
)

var (
	seedConfig    string
	seedVocabPath string
	seedCorpusDir string
	seedReset     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Push a directory corpus into Redis",
	Long: `Load a vocabulary file and a directory corpus (one subdirectory per
category) and store them in Redis, so later train and classify runs can use
'source: redis' without touching the filesystem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(seedConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		if seedVocabPath != "" {
			cfg.Corpus.VocabularyPath = seedVocabPath
		}
		if seedCorpusDir != "" {
			cfg.Corpus.CorpusDir = seedCorpusDir
		}

		tok, err := newTokenizer(cfg)
		if err != nil {
			return fmt.Errorf("failed to create tokenizer: %v", err)
		}

		ctx := context.Background()

		store, err := newRedisStore(ctx, cfg, tok)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %v", err)
		}
		defer store.Close()

		if seedReset {
			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset store: %v", err)
			}
			fmt.Printf("🔄 Cleared existing corpus under %s\n", cfg.Redis.KeyPrefix)
		}

		vocabulary, err := corpus.LoadVocabulary(cfg.Corpus.VocabularyPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %v", err)
		}
		if err := store.SaveVocabulary(ctx, vocabulary); err != nil {
			return err
		}

		start := time.Now()
		count, err := seedDirectory(ctx, store, cfg.Corpus.CorpusDir)
		if err != nil {
			return fmt.Errorf("failed to seed corpus: %v", err)
		}

		fmt.Printf("✅ Seeded %d words and %d documents in %v\n",
			len(vocabulary), count, time.Since(start))
		fmt.Printf("🚀 Use 'textcat train --source redis' to fit from Redis\n")

		return nil
	},
}

// seedDirectory pushes every document of a directory corpus into the store,
// keeping the raw text so the store tokenizes exactly like the file loader.
func seedDirectory(ctx context.Context, store *corpus.RedisStore, root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}

	var categories []string
	for _, entry := range entries {
		if entry.IsDir() {
			categories = append(categories, entry.Name())
		}
	}
	sort.Strings(categories)

	var count int
	for _, category := range categories {
		dir := filepath.Join(root, category)

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := store.AddDocument(ctx, bayes.Category(category), string(data)); err != nil {
				return err
			}
			count++
			return nil
		})
		if err != nil {
			return count, err
		}
	}

	return count, nil
}

func init() {
	seedCmd.Flags().StringVarP(&seedConfig, "config", "c", "", "Configuration file path")
	seedCmd.Flags().StringVar(&seedVocabPath, "vocab", "", "Vocabulary file path (overrides config)")
	seedCmd.Flags().StringVar(&seedCorpusDir, "corpus-dir", "", "Corpus directory (overrides config)")
	seedCmd.Flags().BoolVarP(&seedReset, "reset", "r", false, "Clear the stored corpus before seeding")
}
