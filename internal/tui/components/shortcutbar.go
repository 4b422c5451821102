package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/depthchart/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays the keys that work on the current screen.
type ShortcutBar struct {
	shortcuts []ShortcutDef
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(": "+sc.Desc))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ "))
}

// Shortcut sets for each screen.
var (
	MenuShortcuts = []ShortcutDef{
		{"↑↓/jk", "select"},
		{"1-5", "choose"},
		{"Enter", "open"},
		{"q", "quit"},
	}

	FormShortcuts = []ShortcutDef{
		{"Tab", "next field"},
		{"Enter", "next/submit"},
		{"Esc", "cancel"},
	}

	ViewShortcuts = []ShortcutDef{
		{"Esc/Enter", "back"},
		{"ctrl+c", "quit"},
	}
)
