package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/depthchart/internal/tui/styles"
)

// Form is an ordered set of text fields. Enter advances to the next field
// and submits from the last one; Esc cancels.
type Form struct {
	id         string
	title      string
	fields     []*TextInput
	focusIndex int
	submitted  bool
	canceled   bool
	help       *ShortcutBar
}

// NewForm creates a Form with the given fields in order.
func NewForm(id, title string, fields ...*TextInput) *Form {
	return &Form{
		id:     id,
		title:  title,
		fields: fields,
		help:   NewShortcutBar(FormShortcuts...),
	}
}

// ID returns the form identifier.
func (f *Form) ID() string {
	return f.id
}

// Title returns the form title.
func (f *Form) Title() string {
	return f.title
}

// Fields returns the form fields in order.
func (f *Form) Fields() []*TextInput {
	return f.fields
}

// Field returns the field with id, or nil.
func (f *Form) Field(id string) *TextInput {
	for _, field := range f.fields {
		if field.ID() == id {
			return field
		}
	}
	return nil
}

// Value returns the trimmed value of the field with id.
func (f *Form) Value(id string) string {
	if field := f.Field(id); field != nil {
		return field.Value()
	}
	return ""
}

// SetWidth fits every field to a window width columns wide.
func (f *Form) SetWidth(width int) {
	for _, field := range f.fields {
		field.SetWidth(width)
	}
}

// FocusIndex returns the current focus index.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// FocusedField returns the focused field, or nil for an empty form.
func (f *Form) FocusedField() *TextInput {
	if f.focusIndex >= 0 && f.focusIndex < len(f.fields) {
		return f.fields[f.focusIndex]
	}
	return nil
}

// Focus focuses the first field.
func (f *Form) Focus() tea.Cmd {
	return f.FocusField(0)
}

// FocusField moves focus to the field at index.
func (f *Form) FocusField(index int) tea.Cmd {
	if index < 0 || index >= len(f.fields) {
		return nil
	}
	if current := f.FocusedField(); current != nil {
		current.Blur()
	}
	f.focusIndex = index
	return f.fields[index].Focus()
}

// FocusID moves focus to the field with id.
func (f *Form) FocusID(id string) tea.Cmd {
	for i, field := range f.fields {
		if field.ID() == id {
			return f.FocusField(i)
		}
	}
	return nil
}

// Fail reopens the form with message shown under the field with id.
func (f *Form) Fail(id, message string) tea.Cmd {
	f.submitted = false
	cmd := f.FocusID(id)
	if field := f.Field(id); field != nil {
		field.SetError(message)
	}
	return cmd
}

// NextField moves focus to the next field, wrapping around.
func (f *Form) NextField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focusIndex + 1) % len(f.fields))
}

// PrevField moves focus to the previous field, wrapping around.
func (f *Form) PrevField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focusIndex - 1 + len(f.fields)) % len(f.fields))
}

// Submitted reports whether Enter was pressed on the last field.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Canceled reports whether Esc was pressed.
func (f *Form) Canceled() bool {
	return f.canceled
}

// Update handles navigation keys and forwards everything else to the
// focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.NextField()
		case "shift+tab", "up":
			return f, f.PrevField()
		case "esc":
			f.canceled = true
			return f, nil
		case "enter":
			if f.focusIndex == len(f.fields)-1 {
				f.submitted = true
				return f, nil
			}
			return f, f.NextField()
		}
	}

	field := f.FocusedField()
	if field == nil {
		return f, nil
	}
	_, cmd := field.Update(msg)
	return f, cmd
}

// View renders the title, the fields and the shortcut hints.
func (f *Form) View() string {
	var b strings.Builder

	if f.title != "" {
		b.WriteString(styles.FormTitleStyle.Render(f.title))
		b.WriteString("\n\n")
	}

	for i, field := range f.fields {
		b.WriteString("  ")
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n  ")
	b.WriteString(f.help.View())
	return b.String()
}
