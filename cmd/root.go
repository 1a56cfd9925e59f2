package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textcat",
	Short: "textcat - Naive Bayes text categorizer",
	Long: `textcat is a multinomial Naive Bayes text classifier. It learns
per-category word frequencies over a fixed vocabulary from a labeled
document corpus, then ranks categories for new documents by log-likelihood.

Corpora can live on disk (one directory per category) or in Redis.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("textcat - Naive Bayes text categorizer")
		fmt.Println("Use 'textcat --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(seedCmd)
}
