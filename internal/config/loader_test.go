package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
display:
  width: 1024
  height: 600
  cell_size: 40
  padding: 2
session:
  popup_duration: 2s
  max_merge: 12
catalog:
  path: ./catalog.yaml
  watch: true
  duplicate_policy: last_write_wins
log:
  level: debug
  format: json
metrics:
  enabled: true
  dump_path: /tmp/periodic.prom
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Display.Width)
	assert.Equal(t, 600, cfg.Display.Height)
	assert.Equal(t, 40, cfg.Display.CellSize)
	assert.Equal(t, 2, cfg.Display.Padding)
	assert.Equal(t, DefaultOriginX, cfg.Display.OriginX)
	assert.Equal(t, 2*time.Second, cfg.Session.PopupDuration)
	assert.Equal(t, 12, cfg.Session.MaxMerge)
	assert.Equal(t, "./catalog.yaml", cfg.Catalog.Path)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, DuplicatePolicyLastWriteWins, cfg.Catalog.DuplicatePolicy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.Equal(t, "/tmp/periodic.prom", cfg.Metrics.DumpPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(createTempConfigFile(t, "display: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(createTempConfigFile(t, "log:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PERIODIC_DISPLAY_WIDTH", "1600")
	t.Setenv("PERIODIC_SESSION_MAX_MERGE", "20")

	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, 1600, cfg.Display.Width)
	assert.Equal(t, 20, cfg.Session.MaxMerge)
}

func TestLoad_EmptyPathUsesEnvAndDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Display.Width)
	assert.Equal(t, DefaultPadding, cfg.Display.Padding)
	assert.Equal(t, DefaultPopupDuration, cfg.Session.PopupDuration)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PERIODIC_LOG_LEVEL", "warn")
	t.Setenv("PERIODIC_CATALOG_DUPLICATE_POLICY", "last_write_wins")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DuplicatePolicyLastWriteWins, cfg.Catalog.DuplicatePolicy)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("PERIODIC_SESSION_MAX_MERGE", "-3")
	_, err := LoadFromEnv()
	assert.Error(t, err)
}
