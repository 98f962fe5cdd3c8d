package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"docfield-mapper/internal/source"
)

type Config struct {
	Core   CoreConfig   `toml:"core"`
	Log    LogConfig    `toml:"log"`
	Source SourceConfig `toml:"source"`
	Batch  BatchConfig  `toml:"batch"`
}

type CoreConfig struct {
	// Format is the default output format: table, yaml or csv.
	Format     string `toml:"format"`
	Color      bool   `toml:"color"`
	ExplainTop int    `toml:"explain_top"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type SourceConfig struct {
	MinTextChars int    `toml:"min_text_chars"`
	OCRLanguage  string `toml:"ocr_language"`
}

type BatchConfig struct {
	Concurrency int `toml:"concurrency"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			Format:     formatTable,
			Color:      true,
			ExplainTop: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: SourceConfig{
			MinTextChars: source.DefaultMinTextChars,
			OCRLanguage:  source.DefaultOCRLanguage,
		},
		Batch: BatchConfig{
			Concurrency: 4,
		},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := checkFormat(c.Core.Format); err != nil {
		return err
	}

	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}

	if c.Core.ExplainTop < 0 {
		return fmt.Errorf("core.explain_top must not be negative, got %d", c.Core.ExplainTop)
	}

	return nil
}

func (c *Config) sourceOptions() source.Options {
	return source.Options{
		MinTextChars: c.Source.MinTextChars,
		OCRLanguage:  c.Source.OCRLanguage,
	}
}
