package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile_Missing(t *testing.T) {
	config, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), config)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[core]
format = "yaml"
explain_top = 5

[source]
ocr_language = "deu"

[batch]
concurrency = 8
`), 0o644))

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Core.Format)
	assert.Equal(t, 5, config.Core.ExplainTop)
	assert.True(t, config.Core.Color, "unset keys keep their defaults")
	assert.Equal(t, "deu", config.Source.OCRLanguage)
	assert.Equal(t, 20, config.Source.MinTextChars)
	assert.Equal(t, 8, config.Batch.Concurrency)
	assert.Equal(t, "info", config.Log.Level)

	opts := config.sourceOptions()
	assert.Equal(t, "deu", opts.OCRLanguage)
	assert.Equal(t, 20, opts.MinTextChars)
}

func TestLoadConfigFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[core\n", "failed to decode TOML config"},
		{"format", "[core]\nformat = \"xml\"\n", `unknown format "xml"`},
		{"concurrency", "[batch]\nconcurrency = 0\n", "batch.concurrency must be at least 1"},
		{"explain_top", "[core]\nexplain_top = -2\n", "core.explain_top must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadConfigFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
