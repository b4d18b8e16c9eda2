package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:3000", cfg.Grafana.URL)
	assert.Equal(t, "admin", cfg.Grafana.Username)
	assert.Equal(t, "admin", cfg.Grafana.Password)
	assert.Equal(t, "testdata", cfg.Presets.Datasource)
	assert.Equal(t, "simple", cfg.Presets.Dashboard)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
grafana:
  url: https://grafana.example.com
  apiKey: glsa_123
  timeout: 30s
presets:
  dashboard: overview
dryRun: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://grafana.example.com", cfg.Grafana.URL)
	assert.Equal(t, "glsa_123", cfg.Grafana.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Grafana.Timeout)
	assert.Equal(t, "overview", cfg.Presets.Dashboard)
	assert.True(t, cfg.DryRun)

	// untouched keys keep their defaults
	assert.Equal(t, "admin", cfg.Grafana.Username)
	assert.Equal(t, "testdata", cfg.Presets.Datasource)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "grafana: [unterminated"))
	assert.Error(t, err)
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Config{
		Grafana: GrafanaConfig{
			URL:     "localhost",
			Timeout: -time.Second,
		},
		LogLevel: "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 4)
}

func TestValidateAcceptsApiKeyOnly(t *testing.T) {
	cfg := Default()
	cfg.Grafana.Username = ""
	cfg.Grafana.APIKey = "secret"
	assert.NoError(t, cfg.Validate())
}
