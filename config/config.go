package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "DUALLIST_CONFIG"
	EnvLogLevel   = "DUALLIST_LOG_LEVEL"
	EnvScenario   = "DUALLIST_SCENARIO"
	EnvOutputDir  = "DUALLIST_OUTPUT_DIR"
)

// Defaults ...
const (
	DefaultPath        = "duallist.toml"
	DefaultLogLevel    = "info"
	DefaultScenario    = "scenario.yaml"
	DefaultOutputDir   = "output"
	DefaultStatsBuffer = 100
	DefaultLogMaxMB    = 100
)

// ErrInvalidConfig is the error returned when a loaded configuration fails
// validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the scenario harness.
type Config struct {
	LogLevel        string `toml:"log_level"`
	Scenario        string `toml:"scenario"`
	OutputDir       string `toml:"output_dir"`
	StatsBuffer     int    `toml:"stats_buffer"`
	CheckInvariants bool   `toml:"check_invariants"`

	Log struct {
		File   string `toml:"file"`
		MaxMB  int    `toml:"max_mb"`
		MaxAge int    `toml:"max_age"`
	} `toml:"log"`
}

// LoadConfigStr decodes a TOML document, applies defaults and validates the
// result. Environment overrides are not applied.
func LoadConfigStr(str string) (*Config, error) {
	cfg := &Config{CheckInvariants: true}
	if _, err := toml.Decode(str, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads an optional .env file, then the TOML file named by
// DUALLIST_CONFIG (or duallist.toml). A missing TOML file yields the
// defaults. DUALLIST_* variables override the file's values.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{CheckInvariants: true}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvScenario); v != "" {
		cfg.Scenario = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Scenario == "" {
		cfg.Scenario = DefaultScenario
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.StatsBuffer == 0 {
		cfg.StatsBuffer = DefaultStatsBuffer
	}
	if cfg.Log.MaxMB == 0 {
		cfg.Log.MaxMB = DefaultLogMaxMB
	}
}

// Validate ...
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.StatsBuffer < 0 {
		return fmt.Errorf("stats buffer %d: %w", c.StatsBuffer, ErrInvalidConfig)
	}
	return nil
}

// Level returns the configured zap level. It assumes Validate passed.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
