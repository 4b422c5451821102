package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Chart.File != DefaultChartFile {
		t.Errorf("Chart.File = %q, want %q", cfg.Chart.File, DefaultChartFile)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, LogLevelInfo)
	}
	if cfg.Logging.Dir != DefaultLogDir {
		t.Errorf("Logging.Dir = %q, want %q", cfg.Logging.Dir, DefaultLogDir)
	}
	if cfg.Logging.MaxAge != 7*24*time.Hour {
		t.Errorf("Logging.MaxAge = %v, want 168h", cfg.Logging.MaxAge)
	}
	if cfg.UI.Mode != UIModePlain {
		t.Errorf("UI.Mode = %q, want %q", cfg.UI.Mode, UIModePlain)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Chart: ChartConfig{File: "team.json"},
	}
	cfg.ApplyDefaults()

	if cfg.Chart.File != "team.json" {
		t.Errorf("ApplyDefaults overwrote Chart.File: %q", cfg.Chart.File)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("Logging.Level = %q, want default", cfg.Logging.Level)
	}
	if cfg.Logging.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("Logging.MaxFiles = %d, want %d", cfg.Logging.MaxFiles, DefaultMaxLogFiles)
	}
	if cfg.UI.Color != ColorAuto {
		t.Errorf("UI.Color = %q, want %q", cfg.UI.Color, ColorAuto)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "bad log level",
			modify:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "negative max files",
			modify:    func(c *Config) { c.Logging.MaxFiles = -1 },
			wantField: "logging.max_files",
		},
		{
			name:      "negative max age",
			modify:    func(c *Config) { c.Logging.MaxAge = -time.Hour },
			wantField: "logging.max_age",
		},
		{
			name:      "bad ui mode",
			modify:    func(c *Config) { c.UI.Mode = "gui" },
			wantField: "ui.mode",
		},
		{
			name:      "bad color",
			modify:    func(c *Config) { c.UI.Color = "sometimes" },
			wantField: "ui.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	single := ValidationErrors{{Field: "a", Message: "bad"}}
	if single.Error() != "a: bad" {
		t.Errorf("single error = %q", single.Error())
	}

	multi := ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	if !strings.HasPrefix(multi.Error(), "multiple validation errors:") {
		t.Errorf("multi error = %q", multi.Error())
	}
	if !strings.Contains(multi.Error(), "- b: worse") {
		t.Errorf("multi error should list each field: %q", multi.Error())
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render empty")
	}
}
