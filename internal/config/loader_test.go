package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func newTestLoader() *Loader {
	l := NewLoader()
	l.SetEnvFile("")
	return l
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newTestLoader().LoadConfig("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, `
chart:
  file: seahawks.json

logging:
  level: DEBUG
  dir: /tmp/dc-logs
  console: true
  json: true
  max_files: 3
  max_age: 48h

ui:
  mode: tui
  color: never
`)

	cfg, err := newTestLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Chart.File != "seahawks.json" {
		t.Errorf("expected chart.file 'seahawks.json', got %q", cfg.Chart.File)
	}
	if cfg.Logging.Level != LogLevelDebug {
		t.Errorf("expected logging.level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != "/tmp/dc-logs" {
		t.Errorf("expected logging.dir '/tmp/dc-logs', got %q", cfg.Logging.Dir)
	}
	if !cfg.Logging.Console || !cfg.Logging.JSON {
		t.Error("expected logging.console and logging.json to be true")
	}
	if cfg.Logging.MaxFiles != 3 {
		t.Errorf("expected logging.max_files 3, got %d", cfg.Logging.MaxFiles)
	}
	if cfg.Logging.MaxAge != 48*time.Hour {
		t.Errorf("expected logging.max_age 48h, got %v", cfg.Logging.MaxAge)
	}
	if cfg.UI.Mode != UIModeTUI {
		t.Errorf("expected ui.mode 'tui', got %q", cfg.UI.Mode)
	}
	if cfg.UI.Color != ColorNever {
		t.Errorf("expected ui.color 'never', got %q", cfg.UI.Color)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, `
chart:
  file: team.json
`)

	cfg, err := newTestLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Chart.File != "team.json" {
		t.Errorf("expected chart.file 'team.json', got %q", cfg.Chart.File)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("expected default logging.level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.MaxAge != DefaultMaxLogAge {
		t.Errorf("expected default logging.max_age, got %v", cfg.Logging.MaxAge)
	}
	if cfg.UI.Mode != UIModePlain {
		t.Errorf("expected default ui.mode, got %q", cfg.UI.Mode)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, "chart: [unclosed")

	_, err := newTestLoader().LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_ValidationFails(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, `
ui:
  mode: gui
`)

	_, err := newTestLoader().LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("unexpected error: %v", err)
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected ValidationErrors in chain, got %v", err)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := newTestLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Chart.File != DefaultChartFile {
		t.Errorf("expected default chart file, got %q", cfg.Chart.File)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEPTHCHART_CHART_FILE", "env.json")
	t.Setenv("DEPTHCHART_LOGGING_LEVEL", "WARN")
	t.Setenv("DEPTHCHART_LOGGING_DISABLED", "yes")
	t.Setenv("DEPTHCHART_LOGGING_MAX_FILES", "2")
	t.Setenv("DEPTHCHART_LOGGING_MAX_AGE", "1h")
	t.Setenv("DEPTHCHART_UI_MODE", "tui")

	cfg, err := newTestLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}

	if cfg.Chart.File != "env.json" {
		t.Errorf("expected chart.file from env, got %q", cfg.Chart.File)
	}
	if cfg.Logging.Level != LogLevelWarn {
		t.Errorf("expected logging.level from env, got %q", cfg.Logging.Level)
	}
	if !cfg.Logging.Disabled {
		t.Error("expected logging.disabled from env")
	}
	if cfg.Logging.MaxFiles != 2 {
		t.Errorf("expected logging.max_files from env, got %d", cfg.Logging.MaxFiles)
	}
	if cfg.Logging.MaxAge != time.Hour {
		t.Errorf("expected logging.max_age from env, got %v", cfg.Logging.MaxAge)
	}
	if cfg.UI.Mode != UIModeTUI {
		t.Errorf("expected ui.mode from env, got %q", cfg.UI.Mode)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	writeFile(t, envPath, "DEPTHCHART_CHART_FILE=dotenv.json\n")

	// Register for cleanup; godotenv sets the variable on the process.
	t.Setenv("DEPTHCHART_CHART_FILE", "")
	os.Unsetenv("DEPTHCHART_CHART_FILE")

	l := NewLoader()
	l.SetEnvFile(envPath)

	cfg, err := l.LoadOrDefault(filepath.Join(tmpDir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Chart.File != "dotenv.json" {
		t.Errorf("expected chart.file from .env, got %q", cfg.Chart.File)
	}
}

func TestParseBool(t *testing.T) {
	tests := map[string]bool{
		"true": true, "TRUE": true, "1": true, " yes ": true,
		"false": false, "0": false, "no": false, "": false,
	}
	for in, want := range tests {
		if got := parseBool(in); got != want {
			t.Errorf("parseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".depthchart.yaml")

	cfg := NewConfig()
	cfg.Chart.File = "saved.json"
	cfg.Logging.MaxAge = 36 * time.Hour
	cfg.UI.Mode = UIModeTUI

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := newTestLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(NewConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := string(data)
	for _, want := range []string{"chart:", "file: depth_chart.json", "max_files: 10", "mode: plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshalled config missing %q:\n%s", want, out)
		}
	}
}
