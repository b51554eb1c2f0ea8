package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spccli/internal/config"
)

func newHealthService(t *testing.T, paths config.PathsConfig) *HealthService {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHealthService("1.0.0-test", "2026-08-30", paths, logger)
}

func TestHealthCheck(t *testing.T) {
	hs := newHealthService(t, config.PathsConfig{})

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0-test", status.Version)
	assert.False(t, status.Timestamp.IsZero())
}

func TestReadinessCheck_Ready(t *testing.T) {
	dir := t.TempDir()
	hs := newHealthService(t, config.PathsConfig{
		DataDir:    dir,
		ReportsDir: filepath.Join(dir, "reports"),
	})

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)

	data, ok := status.Services["data"].(ServiceHealth)
	require.True(t, ok)
	assert.Equal(t, "ready", data.Status)
}

func TestReadinessCheck_MissingDataDir(t *testing.T) {
	dir := t.TempDir()
	hs := newHealthService(t, config.PathsConfig{
		DataDir:    filepath.Join(dir, "does-not-exist"),
		ReportsDir: filepath.Join(dir, "reports"),
	})

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)
}

func TestLivenessCheck(t *testing.T) {
	hs := newHealthService(t, config.PathsConfig{})

	status := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", status.Status)
	assert.Contains(t, status.Runtime, "go_version")
	assert.Contains(t, status.Runtime, "goroutines")
}

func TestVersion(t *testing.T) {
	hs := newHealthService(t, config.PathsConfig{})

	info := hs.Version()
	assert.Equal(t, "1.0.0-test", info["version"])
	assert.Equal(t, "2026-08-30", info["build_time"])
	assert.Contains(t, info, "go_version")
}
