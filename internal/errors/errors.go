// Package errors provides error types with actionable suggestions for
// depthchart. Errors carry a Kind so callers can branch with errors.Is while
// still printing a human-readable message.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel kinds for use with errors.Is().
var (
	// ErrUnknownPosition indicates a position string that matches no alias.
	ErrUnknownPosition = errors.New("unknown position")
	// ErrChartFull indicates a position already holds the maximum number of players.
	ErrChartFull = errors.New("depth chart full")
	// ErrPlayerNotFound indicates a player is not listed at the given position.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidRank indicates a string position outside the accepted range.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidPlayer indicates a blank player name.
	ErrInvalidPlayer = errors.New("invalid player name")
	// ErrStorage indicates the chart file could not be read or written.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
)

// ChartError is the base error type for depthchart errors.
type ChartError struct {
	// Kind is the category of error (e.g., ErrChartFull).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., position, file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *ChartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ChartError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches target.
func (e *ChartError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns the message followed by details and the suggestion, if any.
func (e *ChartError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithCause sets the underlying cause of the error.
func (e *ChartError) WithCause(cause error) *ChartError {
	e.Cause = cause
	return e
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *ChartError {
	return &ChartError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// Message returns the user-facing message of err. ChartErrors render their
// Message (without the cause chain); anything else renders err.Error().
func Message(err error) string {
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
