package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfigStr(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		cfg, err := LoadConfigStr(`
log_level = "debug"
scenario = "demo.yaml"
output_dir = "out"
stats_buffer = 5
check_invariants = false

[log]
file = "out/duallist.log"
max_age = 7
`)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "demo.yaml", cfg.Scenario)
		require.Equal(t, "out", cfg.OutputDir)
		require.Equal(t, 5, cfg.StatsBuffer)
		require.False(t, cfg.CheckInvariants)
		require.Equal(t, "out/duallist.log", cfg.Log.File)
		require.Equal(t, DefaultLogMaxMB, cfg.Log.MaxMB)
		require.Equal(t, 7, cfg.Log.MaxAge)
		require.Equal(t, zapcore.DebugLevel, cfg.Level())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigStr("")
		require.NoError(t, err)
		require.Equal(t, DefaultLogLevel, cfg.LogLevel)
		require.Equal(t, DefaultScenario, cfg.Scenario)
		require.Equal(t, DefaultOutputDir, cfg.OutputDir)
		require.Equal(t, DefaultStatsBuffer, cfg.StatsBuffer)
		require.True(t, cfg.CheckInvariants)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := LoadConfigStr(`log_level = "loud"`)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative buffer", func(t *testing.T) {
		_, err := LoadConfigStr(`stats_buffer = -1`)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadConfigStr(`log_level = `)
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duallist.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "warn"
scenario = "from-file.yaml"
`), 0644))

	t.Run("file with env overrides", func(t *testing.T) {
		t.Setenv(EnvConfigPath, path)
		t.Setenv(EnvScenario, "from-env.yaml")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, "from-env.yaml", cfg.Scenario)
		require.Equal(t, DefaultOutputDir, cfg.OutputDir)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, filepath.Join(dir, "absent.toml"))
		t.Setenv(EnvOutputDir, "elsewhere")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultLogLevel, cfg.LogLevel)
		require.Equal(t, "elsewhere", cfg.OutputDir)
		require.True(t, cfg.CheckInvariants)
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Setenv(EnvConfigPath, path)
		t.Setenv(EnvLogLevel, "loud")

		_, err := Load()
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
