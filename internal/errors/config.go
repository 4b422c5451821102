// Package errors provides error types for depthchart.
// This file contains configuration-related errors.
package errors

import (
	"fmt"
	"strings"
)

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *ChartError {
	return &ChartError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the config file for YAML syntax errors:
  1. Use spaces, not tabs, for indentation
  2. Quote values containing ':' or '#'
  3. Regenerate a clean file with: depthchart config init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *ChartError {
	suggestion := fmt.Sprintf("Fix the %q field in the config file", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &ChartError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when config init would overwrite a file.
func ConfigExists(configPath string) *ChartError {
	return &ChartError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Pass --force to overwrite it.",
	}
}
