// Package errors provides error types for depthchart.
// This file contains depth chart operation errors.
package errors

import (
	"fmt"
	"strings"
)

// UnknownPosition creates an error for a position string that matches no alias.
func UnknownPosition(input string) *ChartError {
	return &ChartError{
		Kind:       ErrUnknownPosition,
		Message:    fmt.Sprintf("Position '%s' not recognized. Please choose a valid position.", input),
		Details:    map[string]string{"input": input},
		Suggestion: "Run 'depthchart positions' to list every code and full name.",
	}
}

// UnknownPositions creates an error for a move whose source or target does not resolve.
func UnknownPositions(inputs ...string) *ChartError {
	return &ChartError{
		Kind:    ErrUnknownPosition,
		Message: "One or both positions are not recognized. Please choose valid positions.",
		Details: map[string]string{"input": strings.Join(inputs, ", ")},
	}
}

// ChartFull creates an error for an add to a position that is already at
// capacity. last is the deepest string already filled, e.g. "4th".
func ChartFull(position, last string) *ChartError {
	return &ChartError{
		Kind:       ErrChartFull,
		Message:    fmt.Sprintf("The depth chart for %s is already full (1st to %s string).", position, last),
		Details:    map[string]string{"position": position},
		Suggestion: fmt.Sprintf("Move a %s to another position before adding a new one.", position),
	}
}

// PlayerNotFound creates an error for a player missing from a position's list.
func PlayerNotFound(player, position string) *ChartError {
	return &ChartError{
		Kind:    ErrPlayerNotFound,
		Message: fmt.Sprintf("%s is not listed in the %s depth chart.", player, position),
		Details: map[string]string{
			"player":   player,
			"position": position,
		},
	}
}

// InvalidRank creates an error for a string position outside min..max.
func InvalidRank(input string, min, max int) *ChartError {
	return &ChartError{
		Kind:    ErrInvalidRank,
		Message: fmt.Sprintf("Please enter a number between %d and %d.", min, max),
		Details: map[string]string{"input": input},
	}
}

// RankNotANumber creates an error for rank input that is not an integer.
func RankNotANumber(input string, min, max int) *ChartError {
	return &ChartError{
		Kind:    ErrInvalidRank,
		Message: fmt.Sprintf("Invalid input. Please enter a number between %d and %d.", min, max),
		Details: map[string]string{"input": input},
	}
}

// BlankPlayer creates an error for an empty player name.
func BlankPlayer() *ChartError {
	return &ChartError{
		Kind:    ErrInvalidPlayer,
		Message: "Player name cannot be empty.",
	}
}

// StorageRead creates an error for a chart file that could not be read or parsed.
func StorageRead(path string, cause error) *ChartError {
	return &ChartError{
		Kind:       ErrStorage,
		Message:    fmt.Sprintf("failed to load depth chart from %s", path),
		Cause:      cause,
		Details:    map[string]string{"path": path},
		Suggestion: "Fix or remove the file; a missing file starts an empty chart.",
	}
}

// StorageWrite creates an error for a chart file that could not be written.
func StorageWrite(path string, cause error) *ChartError {
	return &ChartError{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("failed to save depth chart to %s", path),
		Cause:   cause,
		Details: map[string]string{"path": path},
	}
}
