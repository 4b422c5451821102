package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("ui.mode", "unknown ui mode", []string{"plain", "tui"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "plain, tui") {
		t.Error("Suggestion should list valid options")
	}
	if err.Details["field"] != "ui.mode" {
		t.Error("Should include field in details")
	}
}

func TestConfigExists(t *testing.T) {
	err := ConfigExists(".depthchart.yaml")

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigExists should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "--force") {
		t.Error("Suggestion should mention --force")
	}
}
