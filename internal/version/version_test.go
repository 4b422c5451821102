package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer == "" || info.OS == "" || info.Arch == "" {
		t.Error("runtime fields should not be empty")
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if s := info.String(); s != "depthchart 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	s := NewInfo("1.0.0", "abc123", "2024-01-01").FullString()

	for _, want := range []string{"depthchart 1.0.0", "Commit:   abc123", "Built:    2024-01-01", "OS/Arch:"} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q:\n%s", want, s)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	out, err := NewInfo("1.0.0", "abc123", "2024-01-01").JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON() output is not valid JSON: %v", err)
	}
	if decoded["version"] != "1.0.0" || decoded["commit"] != "abc123" {
		t.Errorf("unexpected JSON: %s", out)
	}
}

func TestCurrent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "2.3.4"
	if got := Current().Version; got != "2.3.4" {
		t.Errorf("Current().Version = %q, want linked version", got)
	}

	Version = "dev"
	if Current().Version == "" {
		t.Error("Current().Version should never be empty")
	}
}
