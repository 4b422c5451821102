package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/chart"
	"github.com/wexinc/depthchart/internal/config"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
	"github.com/wexinc/depthchart/internal/logging"
)

// session is the state shared by commands that work on the chart.
type session struct {
	cfg    *config.Config
	store  *chart.Store
	logger *logging.Logger
}

// openSession loads the configuration, starts the log file, and loads the
// chart named by --file or chart.file.
func openSession(cmd *cobra.Command, name string) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if !cfg.Logging.Disabled {
		logConfig := &logging.Config{
			Level:       logging.ParseLevel(string(cfg.Logging.Level)),
			LogDir:      cfg.Logging.Dir,
			MaxLogFiles: cfg.Logging.MaxFiles,
			MaxLogAge:   cfg.Logging.MaxAge,
			Console:     cfg.Logging.Console,
			JSONFormat:  cfg.Logging.JSON,
		}
		if err := logging.InitGlobal(logConfig); err != nil {
			// Non-fatal: warn but continue without file logging
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		}
	}

	file := cfg.Chart.File
	if f, _ := cmd.Flags().GetString("file"); f != "" {
		file = f
	}

	ctx := logging.WithChartFile(logging.WithCommand(cmd.Context(), name), file)
	logger := logging.Global().WithContext(ctx)
	logger.Debug("command started", "config_mode", cfg.UI.Mode)

	store := chart.NewStore(file)
	store.SetLogger(logger)
	if err := store.Load(); err != nil {
		_ = logging.CloseGlobal()
		return nil, err
	}

	return &session{cfg: cfg, store: store, logger: logger}, nil
}

// Close flushes and closes the log file.
func (s *session) Close() {
	_ = logging.CloseGlobal()
}

// loadConfig reads --config if given, otherwise the default config file if
// present, and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault("")
	}
	if err != nil {
		return nil, configError(path, err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = config.LogLevel(strings.ToLower(level))
		if err := cfg.Validate(); err != nil {
			return nil, configError(path, err)
		}
	}
	return cfg, nil
}

// configError turns loader failures into errors with a suggestion.
func configError(path string, err error) error {
	if path == "" {
		path = config.DefaultConfigPath
	}

	var verrs config.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return dcerrors.ConfigValidationError(verrs[0].Field, verrs[0].Message, validOptions(verrs[0].Field)).WithCause(err)
	}

	var lerr *config.LoadError
	if errors.As(err, &lerr) && lerr.Message == "failed to read config file" {
		return dcerrors.ConfigParseError(path, lerr.Err)
	}
	return dcerrors.Wrap(err, dcerrors.ErrConfig, "failed to load configuration")
}

func validOptions(field string) []string {
	switch field {
	case "logging.level":
		return []string{"debug", "info", "warn", "error"}
	case "ui.mode":
		return []string{string(config.UIModePlain), string(config.UIModeTUI)}
	case "ui.color":
		return []string{string(config.ColorAuto), string(config.ColorAlways), string(config.ColorNever)}
	}
	return nil
}
