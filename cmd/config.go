package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textcat/text-classifier/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and validate textcat configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "textcat.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %v", err)
		}

		fmt.Printf("✅ Configuration file generated: %s\n", configPath)
		fmt.Printf("📝 Edit the file to point at your vocabulary and corpus\n")
		fmt.Printf("🚀 Use 'textcat train --config %s' to fit a model\n", configPath)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := args[0]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("❌ Configuration validation failed: %v", err)
		}

		fmt.Printf("✅ Configuration is valid: %s\n", configPath)
		fmt.Printf("\n📊 Configuration Summary:\n")
		fmt.Printf("  Corpus source: %s\n", cfg.Corpus.Source)
		fmt.Printf("  Vocabulary: %s\n", cfg.Corpus.VocabularyPath)
		fmt.Printf("  Corpus directory: %s\n", cfg.Corpus.CorpusDir)
		fmt.Printf("  Word length: %d-%d\n", cfg.Tokenizer.MinWordLength, cfg.Tokenizer.MaxWordLength)
		fmt.Printf("  Stemming: %v\n", cfg.Tokenizer.Stemming)
		if cfg.Corpus.Source == "redis" {
			fmt.Printf("  Redis: %s (prefix %s)\n", cfg.Redis.RedisURL, cfg.Redis.KeyPrefix)
		}

		return nil
	},
}

func init() {
	configGenCmd.Flags().BoolP("force", "f", false, "Overwrite existing config file")

	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
}
