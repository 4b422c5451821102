// Package styles provides Lip Gloss styles for the depth chart TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#1D4ED8") // Blue
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// TitleStyle is for the application title.
var TitleStyle = lipgloss.NewStyle().
	Foreground(Foreground).
	Background(Primary).
	Bold(true).
	Padding(0, 1)

// Menu styles.
var (
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			PaddingLeft(2)

	MenuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)
)

// BoxStyle frames the chart and lineup screens.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(BorderColor).
	Padding(0, 1)

// Text styles.
var (
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Shortcut hint styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form styles.
var (
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Padding(0, 1)

	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	FormInputStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	FormInputFocusedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Background).
				Padding(0, 1)
)
