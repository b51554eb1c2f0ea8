package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5, cfg.Analysis.DefaultSampleSize)
	assert.Equal(t, "data/reports", cfg.Paths.ReportsDir)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPC_SERVER_PORT", "9191")
	t.Setenv("SPC_ANALYSIS_DEFAULT_SAMPLE_SIZE", "3")
	t.Setenv("SPC_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Analysis.DefaultSampleSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 7070\npaths:\n  reports_dir: out/reports\n")
	require.NoError(t, os.WriteFile(path, content, 0644))
	t.Setenv("SPC_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "out/reports", cfg.Paths.ReportsDir)
}

func TestLoadInvalidSampleSize(t *testing.T) {
	t.Setenv("SPC_ANALYSIS_DEFAULT_SAMPLE_SIZE", "9")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("SPC_LOGGING_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestReportPath(t *testing.T) {
	cfg := &Config{Paths: PathsConfig{ReportsDir: "data/reports"}}
	assert.Equal(t, filepath.Join("data", "reports", "r.csv"), cfg.ReportPath("r.csv"))
	assert.Equal(t, "/abs/r.csv", cfg.ReportPath("/abs/r.csv"))
}
