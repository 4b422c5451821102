package chart

import (
	"strconv"
	"strings"

	dcerrors "github.com/wexinc/depthchart/internal/errors"
)

// Accepted string positions for Move.
const (
	MinRank = 1
	MaxRank = MaxDepth
)

// ParseRank parses a 1-based string position from user input.
func ParseRank(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, dcerrors.RankNotANumber(trimmed, MinRank, MaxRank)
	}
	if err := ValidateRank(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateRank returns an error if n is outside MinRank..MaxRank.
func ValidateRank(n int) error {
	if n < MinRank || n > MaxRank {
		return dcerrors.InvalidRank(strconv.Itoa(n), MinRank, MaxRank)
	}
	return nil
}
