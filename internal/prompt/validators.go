package prompt

import (
	"errors"
	"strings"

	"github.com/wexinc/depthchart/internal/chart"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
)

// NonEmpty accepts any answer with non-blank content and returns it trimmed.
// Blank answers are rejected with message.
func NonEmpty(message string) Validator[string] {
	return func(raw string) (string, error) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", errors.New(message)
		}
		return trimmed, nil
	}
}

// Rank accepts a string position between chart.MinRank and chart.MaxRank.
func Rank(raw string) (int, error) {
	return chart.ParseRank(raw)
}

// Position accepts any alias of a known position and returns its code.
func Position(raw string) (chart.Position, error) {
	pos, ok := chart.Normalize(raw)
	if !ok {
		return "", dcerrors.UnknownPosition(strings.TrimSpace(raw))
	}
	return pos, nil
}
