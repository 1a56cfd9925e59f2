package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/config"
)

var (
	trainConfig    string
	trainVocabPath string
	trainCorpusDir string
	trainSource    string
	trainTopWords  int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit category models from a labeled corpus",
	Long: `Fit one word-probability model per category from the configured corpus
and report per-category statistics.

Models are a pure function of (vocabulary, corpus) and are refit on demand;
there is no trained-model file to manage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(trainConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		// Flag overrides
		if trainVocabPath != "" {
			cfg.Corpus.VocabularyPath = trainVocabPath
		}
		if trainCorpusDir != "" {
			cfg.Corpus.CorpusDir = trainCorpusDir
		}
		if trainSource != "" {
			cfg.Corpus.Source = trainSource
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %v", err)
		}

		tok, err := newTokenizer(cfg)
		if err != nil {
			return fmt.Errorf("failed to create tokenizer: %v", err)
		}

		ctx := context.Background()

		fmt.Printf("🧠 textcat Training\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Corpus source: %s\n", cfg.Corpus.Source)
		if cfg.Corpus.Source == "directory" {
			fmt.Printf("📚 Vocabulary: %s\n", cfg.Corpus.VocabularyPath)
			fmt.Printf("📂 Corpus: %s\n", cfg.Corpus.CorpusDir)
		} else {
			fmt.Printf("🔑 Redis prefix: %s\n", cfg.Redis.KeyPrefix)
		}
		fmt.Printf("\n")

		start := time.Now()

		vocabulary, samples, err := loadTrainingSet(ctx, cfg, tok)
		if err != nil {
			return fmt.Errorf("failed to load training set: %v", err)
		}

		template, err := bayes.NewWordCounts(vocabulary)
		if err != nil {
			return fmt.Errorf("invalid vocabulary: %v", err)
		}

		counts := bayes.CountCategories(samples, template)
		model, err := bayes.EstimateProbabilities(counts)
		if err != nil {
			return fmt.Errorf("failed to fit model: %v", err)
		}

		duration := time.Since(start)

		fmt.Printf("✅ Fitted %d categories from %d documents in %v\n",
			len(model), len(samples), duration)
		fmt.Printf("📖 Vocabulary size: %d words\n\n", len(vocabulary))

		printCategoryStats(counts, samples, trainTopWords)

		return nil
	},
}

// printCategoryStats reports per-category document and word-occurrence
// totals plus the most frequent vocabulary words.
func printCategoryStats(counts bayes.CategoryCounts, samples []bayes.Sample, topWords int) {
	docsPerCategory := make(map[bayes.Category]int)
	for _, sample := range samples {
		docsPerCategory[sample.Category]++
	}

	categories := make([]bayes.Category, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		perWord := counts[category]
		fmt.Printf("📊 %s: %d documents, %d vocabulary word occurrences\n",
			category, docsPerCategory[category], perWord.Total())

		type wordCount struct {
			word string
			n    int
		}
		frequent := make([]wordCount, 0, len(perWord))
		for word, n := range perWord {
			if n > 0 {
				frequent = append(frequent, wordCount{word, n})
			}
		}
		sort.Slice(frequent, func(i, j int) bool {
			if frequent[i].n != frequent[j].n {
				return frequent[i].n > frequent[j].n
			}
			return frequent[i].word < frequent[j].word
		})

		if topWords > 0 && len(frequent) > topWords {
			frequent = frequent[:topWords]
		}
		for i, wc := range frequent {
			fmt.Printf("  %2d. %-15s %d\n", i+1, wc.word, wc.n)
		}
	}
}

func init() {
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Configuration file path")
	trainCmd.Flags().StringVar(&trainVocabPath, "vocab", "", "Vocabulary file path (overrides config)")
	trainCmd.Flags().StringVar(&trainCorpusDir, "corpus-dir", "", "Corpus directory (overrides config)")
	trainCmd.Flags().StringVar(&trainSource, "source", "", "Corpus source: directory or redis (overrides config)")
	trainCmd.Flags().IntVar(&trainTopWords, "top-words", 10, "Most frequent words to show per category")
}
