package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, DefaultAnalyzeSettings(), cfg.Analyze)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  log_level: debug
  max_workers: 8
analyze:
  window: 3
  vertex_source: no_stop_words
  pagerank:
    damping: 0.9
  keywords_num: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 8, cfg.Server.MaxWorkers)
	assert.Equal(t, 3, cfg.Analyze.Window)
	assert.Equal(t, ViewNoStopWords, cfg.Analyze.VertexSource)
	assert.Equal(t, 0.9, cfg.Analyze.PageRank.Damping)
	assert.Equal(t, 20, cfg.Analyze.KeywordsNum)

	// Unset fields still carry defaults.
	assert.Equal(t, ViewNoStopWords, cfg.Analyze.EdgeSource)
	assert.Equal(t, 1e-8, cfg.Analyze.PageRank.Tolerance)
	assert.Equal(t, 6, cfg.Analyze.Num)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
analyze:
  window: 3
`)
	t.Setenv("TEXTRANK_PORT", "7070")
	t.Setenv("TEXTRANK_WINDOW", "5")
	t.Setenv("TEXTRANK_DAMPING", "0.7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Analyze.Window)
	assert.Equal(t, 0.7, cfg.Analyze.PageRank.Damping)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "unknown view selector",
			content: "analyze:\n  edge_source: adjectives\n",
		},
		{
			name:    "invalid damping",
			content: "analyze:\n  pagerank:\n    damping: 2\n",
		},
		{
			name:    "negative damping",
			content: "analyze:\n  pagerank:\n    damping: -0.5\n",
		},
		{
			name:    "negative max iterations",
			content: "analyze:\n  pagerank:\n    max_iterations: -3\n",
		},
		{
			name:    "negative damping from env",
			content: "",
			env:     map[string]string{"TEXTRANK_DAMPING": "-0.5"},
		},
		{
			name:    "invalid log level",
			content: "server:\n  log_level: loud\n",
		},
		{
			name:    "malformed yaml",
			content: "analyze: [unclosed\n",
		},
		{
			name:    "non-numeric env override",
			content: "",
			env:     map[string]string{"TEXTRANK_WINDOW": "wide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfigFile(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
