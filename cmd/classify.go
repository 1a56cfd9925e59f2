package cmd

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/textcat/text-classifier/pkg/bayes"
	"github.com/textcat/text-classifier/pkg/config"
	"github.com/textcat/text-classifier/pkg/corpus"
)

var (
	classifyConfig   string
	classifyCategory string
	classifyTopN     int
)

var classifyCmd = &cobra.Command{
	Use:   "classify [document-file]",
	Short: "Rank categories for a document",
	Long: `Classify a document against the categories of the configured corpus.

With a file argument the document is read from disk; without one, an
interactive prompt asks for the text. The model is fitted once from the
corpus and every category is scored against it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(classifyConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		tok, err := newTokenizer(cfg)
		if err != nil {
			return fmt.Errorf("failed to create tokenizer: %v", err)
		}

		ctx := context.Background()

		vocabulary, samples, err := loadTrainingSet(ctx, cfg, tok)
		if err != nil {
			return fmt.Errorf("failed to load training set: %v", err)
		}

		model, err := bayes.Fit(vocabulary, samples)
		if err != nil {
			return fmt.Errorf("failed to fit model: %v", err)
		}
		if len(model) == 0 {
			return fmt.Errorf("corpus contains no training documents")
		}

		var tokens []string
		if len(args) > 0 {
			tokens, err = corpus.NewLoader(tok).LoadDocument(args[0])
			if err != nil {
				return fmt.Errorf("failed to load document: %v", err)
			}
		} else {
			var text string
			prompt := &survey.Input{Message: "Enter text to classify:"}
			if err := survey.AskOne(prompt, &text); err != nil {
				return err
			}
			tokens, err = tok.Tokenize(text)
			if err != nil {
				return fmt.Errorf("failed to tokenize input: %v", err)
			}
		}

		if classifyCategory != "" {
			score, err := bayes.ScoreCategory(model, bayes.Category(classifyCategory), tokens)
			if err != nil {
				return err
			}
			fmt.Printf("📊 %s: %.6f\n", classifyCategory, score)
			return nil
		}

		scores := bayes.Classify(model, tokens)

		topN := cfg.Output.TopN
		if classifyTopN > 0 {
			topN = classifyTopN
		}
		if topN > 0 && len(scores) > topN {
			scores = scores[:topN]
		}

		fmt.Printf("🏷️  Ranked categories (%d tokens):\n", len(tokens))
		for i, s := range scores {
			marker := "  "
			if i == 0 {
				marker = "🥇"
			}
			fmt.Printf("%s %2d. %-20s %.6f\n", marker, i+1, s.Category, s.Score)
		}

		if cfg.Output.Verbose {
			fmt.Printf("\n📖 Vocabulary size: %d, categories: %d\n", len(vocabulary), len(model))
		}

		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfig, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().StringVar(&classifyCategory, "category", "", "Score only this category")
	classifyCmd.Flags().IntVarP(&classifyTopN, "top", "n", 0, "Show only the top N categories (overrides config)")
}
