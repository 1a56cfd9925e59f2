package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents textcat configuration
type Config struct {
	// Tokenization settings
	Tokenizer TokenizerConfig `yaml:"tokenizer"`

	// Corpus source settings
	Corpus CorpusConfig `yaml:"corpus"`

	// Redis corpus storage settings
	Redis RedisConfig `yaml:"redis"`

	// Result presentation settings
	Output OutputConfig `yaml:"output"`
}

// TokenizerConfig contains word extraction parameters
type TokenizerConfig struct {
	MinWordLength int    `yaml:"min_word_length"`
	MaxWordLength int    `yaml:"max_word_length"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Stemming      bool   `yaml:"stemming"`
	StemLanguage  string `yaml:"stem_language"`
}

// CorpusConfig selects where the vocabulary and training documents come from
type CorpusConfig struct {
	Source         string `yaml:"source"` // directory, redis
	VocabularyPath string `yaml:"vocabulary_path"`
	CorpusDir      string `yaml:"corpus_dir"`
}

// RedisConfig contains Redis corpus storage settings
type RedisConfig struct {
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`
}

// OutputConfig contains result presentation settings
type OutputConfig struct {
	TopN    int  `yaml:"top_n"` // 0 = all categories
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{
			MinWordLength: 2,
			MaxWordLength: 32,
			CaseSensitive: false,
			Stemming:      false,
			StemLanguage:  "english",
		},
		Corpus: CorpusConfig{
			Source:         "directory",
			VocabularyPath: "vocabulary.txt",
			CorpusDir:      "corpus",
		},
		Redis: RedisConfig{
			RedisURL:    "redis://localhost:6379",
			KeyPrefix:   "textcat:corpus",
			DatabaseNum: 0,
		},
		Output: OutputConfig{
			TopN:    0,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If no config file specified, return defaults
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Tokenizer.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be >= 1")
	}

	if c.Tokenizer.MaxWordLength < c.Tokenizer.MinWordLength {
		return fmt.Errorf("max_word_length must be >= min_word_length")
	}

	if c.Tokenizer.Stemming && c.Tokenizer.StemLanguage == "" {
		return fmt.Errorf("stem_language cannot be empty when stemming is enabled")
	}

	if c.Corpus.Source != "directory" && c.Corpus.Source != "redis" {
		return fmt.Errorf("corpus source must be 'directory' or 'redis'")
	}

	if c.Corpus.Source == "redis" && c.Redis.RedisURL == "" {
		return fmt.Errorf("redis_url cannot be empty when corpus source is 'redis'")
	}

	if c.Output.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0")
	}

	return nil
}
