package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty directory and clears GOCALC_* variables
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvConfig, "GOCALC_COLOR", "GOCALC_MENU", "GOCALC_READLINE", "GOCALC_TRANSCRIPT", "GOCALC_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_HomeFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, DefaultFile), "menu: false\ntranscript: /tmp/calc.jsonl\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Menu {
		t.Error("Menu = true, want false from file")
	}
	if cfg.Transcript != "/tmp/calc.jsonl" {
		t.Errorf("Transcript = %q", cfg.Transcript)
	}
	if !cfg.Color || !cfg.Readline {
		t.Errorf("keys missing from the file lost their defaults: %+v", cfg)
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestLoad_EnvConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.yaml")
	writeFile(t, path, "color: false\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Color {
		t.Error("Color = true, want false from $GOCALC_CONFIG file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.yaml")
	writeFile(t, path, "color: false\nlog_level: info\n")
	t.Setenv("GOCALC_COLOR", "true")
	t.Setenv("GOCALC_LOG_LEVEL", "debug")
	t.Setenv("GOCALC_MENU", "not-a-bool")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !cfg.Color {
		t.Error("Color = false, want env override true")
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if !cfg.Menu {
		t.Error("invalid GOCALC_MENU should keep the default")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.yaml")
	writeFile(t, path, "color: [unterminated\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() expected parse error, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		level     string
		wantError bool
	}{
		{"info", false},
		{"DEBUG", false},
		{"trace", true},
		{"", true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.LogLevel = tt.level
		err := cfg.Validate()
		if (err != nil) != tt.wantError {
			t.Errorf("Validate(%q) error = %v, wantError %v", tt.level, err, tt.wantError)
		}
	}
}
