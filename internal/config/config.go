// Package config loads calculator settings from defaults, an optional YAML
// file and GOCALC_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the variable holding the config file path
const EnvConfig = "GOCALC_CONFIG"

// DefaultFile is the config file looked up in the home directory
const DefaultFile = ".gocalc.yaml"

// Config holds user settings
type Config struct {
	// Color enables styled output
	Color bool `yaml:"color"`
	// Menu prints the operator menu every turn
	Menu bool `yaml:"menu"`
	// Transcript is the JSONL transcript path; empty disables it
	Transcript string `yaml:"transcript"`
	// LogLevel is "info" or "debug"
	LogLevel string `yaml:"log_level"`
	// Readline enables line editing when stdin is a terminal
	Readline bool `yaml:"readline"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Color:    true,
		Menu:     true,
		LogLevel: "info",
		Readline: true,
	}
}

// Load builds the configuration. path is the file named on the command line;
// when empty, $GOCALC_CONFIG and then ~/.gocalc.yaml are tried. An explicitly
// named file must exist, the home directory file is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, DefaultFile)
		}
	}

	if path != "" {
		err := LoadFile(path, &cfg)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks field values
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "info", "debug":
		return nil
	default:
		return fmt.Errorf("unknown log level: %q (valid options: info, debug)", c.LogLevel)
	}
}

// Level returns the slog level for LogLevel
func (c Config) Level() slog.Level {
	if strings.EqualFold(c.LogLevel, "debug") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func applyEnv(cfg *Config) {
	cfg.Color = envBool("GOCALC_COLOR", cfg.Color)
	cfg.Menu = envBool("GOCALC_MENU", cfg.Menu)
	cfg.Readline = envBool("GOCALC_READLINE", cfg.Readline)
	cfg.Transcript = envStr("GOCALC_TRANSCRIPT", cfg.Transcript)
	cfg.LogLevel = envStr("GOCALC_LOG_LEVEL", cfg.LogLevel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
