// Package components provides the form pieces used by the depth chart TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/depthchart/internal/tui/styles"
)

// TextInput is a labelled single-line field with an optional error line
// shown underneath it.
type TextInput struct {
	model   textinput.Model
	id      string
	label   string
	errText string
	focused bool
}

// NewTextInput creates a new TextInput.
func NewTextInput(id, label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = ""

	return &TextInput{
		model: ti,
		id:    id,
		label: label,
	}
}

// ID returns the field identifier.
func (t *TextInput) ID() string {
	return t.id
}

// Label returns the field label.
func (t *TextInput) Label() string {
	return t.label
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// Value returns the value with surrounding whitespace removed.
func (t *TextInput) Value() string {
	return strings.TrimSpace(t.model.Value())
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// SetError shows message under the field. An empty message clears it.
func (t *TextInput) SetError(message string) {
	t.errText = message
}

// Err returns the error shown under the field.
func (t *TextInput) Err() string {
	return t.errText
}

// Width returns the width of the input area.
func (t *TextInput) Width() int {
	return t.model.Width
}

// SetWidth sizes the input area so the label and input fit in width columns.
func (t *TextInput) SetWidth(width int) {
	t.model.Width = width - len(t.label) - 5
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// Update forwards msg to the underlying input while focused. Typing clears
// the error line.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		t.errText = ""
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any error line.
func (t *TextInput) View() string {
	labelStyle := styles.FormLabelStyle
	inputStyle := styles.FormInputStyle
	if t.focused {
		labelStyle = styles.FormLabelFocusedStyle
		inputStyle = styles.FormInputFocusedStyle
	}

	view := labelStyle.Render(t.label+": ") + inputStyle.Render(t.model.View())
	if t.errText != "" {
		view += "\n    " + styles.ErrorTextStyle.Render(t.errText)
	}
	return view
}
