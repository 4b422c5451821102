// Package config provides configuration data structures for depthchart.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete depthchart configuration loaded from
// .depthchart.yaml.
type Config struct {
	Chart   ChartConfig   `yaml:"chart"   json:"chart"   mapstructure:"chart"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
	UI      UIConfig      `yaml:"ui"      json:"ui"      mapstructure:"ui"`
}

// ChartConfig configures where the depth chart is stored.
type ChartConfig struct {
	// File is the JSON file holding the chart (default: depth_chart.json).
	File string `yaml:"file" json:"file" mapstructure:"file"`
}

// LogLevel is the minimum level written to the log file.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig configures the per-run log file.
type LoggingConfig struct {
	// Disabled turns off the log file entirely.
	Disabled bool `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
	// Level is the minimum level to record (default: info).
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the directory log files are written to (default: .depthchart/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// Console mirrors log lines to stderr.
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
	// JSON switches the log format from text to JSON.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
	// MaxFiles is how many log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge is how long log files are kept (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
}

// UIMode selects the interactive front end.
type UIMode string

const (
	// UIModePlain is the numbered text menu.
	UIModePlain UIMode = "plain"
	// UIModeTUI is the full-screen Bubble Tea interface.
	UIModeTUI UIMode = "tui"
)

// ColorMode controls coloured output in the plain menu.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UIConfig configures the interactive front end.
type UIConfig struct {
	// Mode is the front end started by the bare command (default: plain).
	Mode UIMode `yaml:"mode" json:"mode" mapstructure:"mode"`
	// Color controls colour in the plain menu (default: auto).
	Color ColorMode `yaml:"color" json:"color" mapstructure:"color"`
}

// Default values.
const (
	DefaultChartFile   = "depth_chart.json"
	DefaultLogDir      = ".depthchart/logs"
	DefaultMaxLogFiles = 10
	DefaultMaxLogAge   = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			File: DefaultChartFile,
		},
		Logging: LoggingConfig{
			Level:    LogLevelInfo,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
		UI: UIConfig{
			Mode:  UIModePlain,
			Color: ColorAuto,
		},
	}
}

// ApplyDefaults fills in default values for any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Chart.File == "" {
		c.Chart.File = defaults.Chart.File
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = defaults.Logging.MaxFiles
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = defaults.Logging.MaxAge
	}

	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Logging.Level {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_files", Message: "must be non-negative"})
	}
	if c.Logging.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_age", Message: "must be non-negative"})
	}

	switch c.UI.Mode {
	case "", UIModePlain, UIModeTUI:
	default:
		errs = append(errs, &ValidationError{
			Field:   "ui.mode",
			Message: fmt.Sprintf("unknown mode %q, must be 'plain' or 'tui'", c.UI.Mode),
		})
	}

	switch c.UI.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, &ValidationError{
			Field:   "ui.color",
			Message: "must be 'auto', 'always', or 'never'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}
