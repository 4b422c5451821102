// Package config provides configuration loading and management for depthchart.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default config file, relative to the working directory.
	DefaultConfigPath = ".depthchart.yaml"

	// DefaultEnvFile is the dotenv file read before environment overrides.
	DefaultEnvFile = ".env"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DEPTHCHART"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, envFile: DefaultEnvFile}
}

// SetEnvFile changes the dotenv file read before environment overrides.
// An empty path disables dotenv loading.
func (l *Loader) SetEnvFile(path string) {
	l.envFile = path
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath. A missing file is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(cfg, path)
}

// LoadOrDefault behaves like LoadConfig but starts from the built-in
// defaults when the file does not exist.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig(), path)
	}
	return l.LoadConfig(path)
}

// finish applies dotenv and environment overrides, defaults, and validation.
func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	if err := loadDotEnv(l.envFile); err != nil {
		return nil, &LoadError{
			Path:    l.envFile,
			Message: "failed to read env file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// loadDotEnv reads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_CHART_FILE"); v != "" {
		cfg.Chart.File = v
	}

	if v := os.Getenv(EnvPrefix + "_LOGGING_DISABLED"); v != "" {
		cfg.Logging.Disabled = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = LogLevel(strings.ToLower(v))
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_CONSOLE"); v != "" {
		cfg.Logging.Console = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_JSON"); v != "" {
		cfg.Logging.JSON = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_MAX_FILES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Logging.MaxFiles = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Logging.MaxAge = d
		}
	}

	if v := os.Getenv(EnvPrefix + "_UI_MODE"); v != "" {
		cfg.UI.Mode = UIMode(strings.ToLower(v))
	}
	if v := os.Getenv(EnvPrefix + "_UI_COLOR"); v != "" {
		cfg.UI.Color = ColorMode(strings.ToLower(v))
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc lower-cases and converts strings into our enum types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		s := strings.ToLower(strings.TrimSpace(data.(string)))
		switch to {
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(s), nil
		case reflect.TypeOf(UIMode("")):
			return UIMode(s), nil
		case reflect.TypeOf(ColorMode("")):
			return ColorMode(s), nil
		}

		return data, nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}
