package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromConfigDirParsesTargets(t *testing.T) {
	dir := t.TempDir()

	hclContent := `
watch {
  interval = "5s"
}

target "Jopi" {
  http {
    scheme = "http"
    hostname = "jopi_app"
    port = "8000"
    path = "/health/"
  }
}

target "Synergas" {
  http {
    hostname = "synergas_app"
    port = "8000"
    path = "/health/"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "watcher.hcl"), []byte(hclContent), 0o644))

	cfg := config.Config{}
	require.NoError(t, cfg.GenerateFromConfigDir(dir))

	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "Jopi", cfg.Targets[0].Name)
	assert.Equal(t, "Synergas", cfg.Targets[1].Name)
	require.NotNil(t, cfg.Targets[0].HTTP)
	assert.Equal(t, "jopi_app", cfg.Targets[0].HTTP.Hostname)
	assert.Equal(t, "/health/", cfg.Targets[0].HTTP.Path)

	interval, err := cfg.CheckInterval()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, interval)
}

func TestGenerateFromConfigDirToleratesMissingDir(t *testing.T) {
	cfg := config.Config{}
	require.NoError(t, cfg.GenerateFromConfigDir("/does/not/exist"))
	assert.Empty(t, cfg.Targets)
}

func TestApplyDefaultsInstallsDjangoTargets(t *testing.T) {
	cfg := config.Config{}
	cfg.ApplyDefaults()

	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "Jopi", cfg.Targets[0].Name)
	assert.Equal(t, "Synergas", cfg.Targets[1].Name)
}

func TestApplyDefaultsKeepsConfiguredTargets(t *testing.T) {
	cfg := config.Config{Targets: []config.Target{{Name: "Custom", Filesystem: "/tmp"}}}
	cfg.ApplyDefaults()

	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "Custom", cfg.Targets[0].Name)
}

func TestCheckIntervalDefaultsToSixtySeconds(t *testing.T) {
	t.Setenv("HEALTH_CHECK_INTERVAL", "")

	cfg := config.Config{}

	interval, err := cfg.CheckInterval()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, interval)
}

func TestCheckIntervalEnvOverridesWatchBlock(t *testing.T) {
	t.Setenv("HEALTH_CHECK_INTERVAL", "5")

	cfg := config.Config{Watch: &config.Watch{Interval: "2m"}}

	interval, err := cfg.CheckInterval()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, interval)
}

func TestCheckIntervalRejectsGarbageEnvValue(t *testing.T) {
	t.Setenv("HEALTH_CHECK_INTERVAL", "soon")

	cfg := config.Config{}

	_, err := cfg.CheckInterval()
	assert.Error(t, err)
}

func TestCheckIntervalRejectsNonPositiveValues(t *testing.T) {
	t.Setenv("HEALTH_CHECK_INTERVAL", "0")

	cfg := config.Config{}

	_, err := cfg.CheckInterval()
	assert.Error(t, err)
}
