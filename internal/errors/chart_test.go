package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestUnknownPosition(t *testing.T) {
	err := UnknownPosition("XX")

	if !errors.Is(err, ErrUnknownPosition) {
		t.Error("UnknownPosition should return ErrUnknownPosition")
	}
	if err.Error() != "Position 'XX' not recognized. Please choose a valid position." {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Details["input"] != "XX" {
		t.Error("Should include input in details")
	}
}

func TestChartFull(t *testing.T) {
	err := ChartFull("QB", "4th")

	if !errors.Is(err, ErrChartFull) {
		t.Error("ChartFull should return ErrChartFull")
	}
	if !strings.Contains(err.Message, "(1st to 4th string)") {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestPlayerNotFound(t *testing.T) {
	err := PlayerNotFound("Alice", "WR")

	if !errors.Is(err, ErrPlayerNotFound) {
		t.Error("PlayerNotFound should return ErrPlayerNotFound")
	}
	if err.Message != "Alice is not listed in the WR depth chart." {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestRankErrors(t *testing.T) {
	if err := InvalidRank("7", 1, 4); !errors.Is(err, ErrInvalidRank) || err.Message != "Please enter a number between 1 and 4." {
		t.Errorf("InvalidRank = %v", err)
	}
	if err := RankNotANumber("x", 1, 4); !errors.Is(err, ErrInvalidRank) || !strings.HasPrefix(err.Message, "Invalid input.") {
		t.Errorf("RankNotANumber = %v", err)
	}
}

func TestStorageErrors(t *testing.T) {
	cause := errors.New("boom")

	read := StorageRead("/tmp/x.json", cause)
	if !errors.Is(read, ErrStorage) || !errors.Is(read, cause) {
		t.Error("StorageRead should match ErrStorage and its cause")
	}

	write := StorageWrite("/tmp/x.json", cause)
	if write.Details["path"] != "/tmp/x.json" {
		t.Error("StorageWrite should include path in details")
	}
}
