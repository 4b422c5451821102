package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newMoveForm() *Form {
	return NewForm("move", "Move Player",
		NewTextInput("current", "Current position"),
		NewTextInput("player", "Player"),
		NewTextInput("new", "New position"),
		NewTextInput("rank", "String position (1-4)"),
	)
}

func typeText(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewForm(t *testing.T) {
	f := newMoveForm()

	if f.ID() != "move" {
		t.Errorf("Expected ID 'move', got '%s'", f.ID())
	}
	if f.Title() != "Move Player" {
		t.Errorf("Expected title 'Move Player', got '%s'", f.Title())
	}
	if len(f.Fields()) != 4 {
		t.Errorf("Expected 4 fields, got %d", len(f.Fields()))
	}
}

func TestFormFocus(t *testing.T) {
	f := newMoveForm()
	f.Focus()

	if f.FocusIndex() != 0 || !f.Fields()[0].Focused() {
		t.Error("Focus should focus the first field")
	}
}

func TestFormNextPrevWrap(t *testing.T) {
	f := newMoveForm()
	f.Focus()

	f.PrevField()
	if f.FocusIndex() != 3 {
		t.Errorf("PrevField from first should wrap to 3, got %d", f.FocusIndex())
	}
	f.NextField()
	if f.FocusIndex() != 0 {
		t.Errorf("NextField from last should wrap to 0, got %d", f.FocusIndex())
	}
	if f.Fields()[3].Focused() {
		t.Error("previous field should be blurred")
	}
}

func TestFormUpdateTabNavigation(t *testing.T) {
	f := newMoveForm()
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusIndex() != 1 {
		t.Errorf("Tab should move to 1, got %d", f.FocusIndex())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.FocusIndex() != 0 {
		t.Errorf("Shift+Tab should move back to 0, got %d", f.FocusIndex())
	}
}

func TestFormEnterAdvancesThenSubmits(t *testing.T) {
	f := newMoveForm()
	f.Focus()

	for _, v := range []string{"wr", "Alice", "te"} {
		typeText(f, v)
		f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	if f.Submitted() {
		t.Fatal("form should not submit before the last field")
	}
	if f.FocusIndex() != 3 {
		t.Fatalf("expected focus on rank, got %d", f.FocusIndex())
	}

	typeText(f, "1")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !f.Submitted() {
		t.Fatal("Enter on the last field should submit")
	}

	want := map[string]string{"current": "wr", "player": "Alice", "new": "te", "rank": "1"}
	for id, v := range want {
		if got := f.Value(id); got != v {
			t.Errorf("Value(%q) = %q, want %q", id, got, v)
		}
	}
}

func TestFormEscCancels(t *testing.T) {
	f := newMoveForm()
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !f.Canceled() {
		t.Error("Esc should cancel the form")
	}
}

func TestFormFail(t *testing.T) {
	f := newMoveForm()
	f.Focus()
	f.FocusField(3)
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	f.Fail("rank", "Please enter a number between 1 and 4.")
	if f.Submitted() {
		t.Error("Fail should clear the submitted flag")
	}
	if f.FocusedField().ID() != "rank" {
		t.Errorf("Fail should focus rank, got %s", f.FocusedField().ID())
	}
	if !strings.Contains(f.View(), "Please enter a number between 1 and 4.") {
		t.Error("View should show the field error")
	}
}

func TestFormFieldLookup(t *testing.T) {
	f := newMoveForm()

	if f.Field("player") == nil {
		t.Error("Field(player) should exist")
	}
	if f.Field("missing") != nil {
		t.Error("Field(missing) should be nil")
	}
	if f.Value("missing") != "" {
		t.Error("Value(missing) should be empty")
	}
	if f.FocusID("missing") != nil {
		t.Error("FocusID(missing) should return nil")
	}
}

func TestFormView(t *testing.T) {
	view := newMoveForm().View()

	for _, want := range []string{"Move Player", "Current position", "Esc", "cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestFormEmptyFields(t *testing.T) {
	f := NewForm("empty", "")

	if f.Focus() != nil || f.NextField() != nil || f.PrevField() != nil {
		t.Error("empty form navigation should return nil")
	}
	if f.FocusedField() != nil {
		t.Error("empty form should have no focused field")
	}
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
}

func TestFormSetWidth(t *testing.T) {
	f := newMoveForm()
	f.SetWidth(80)

	for _, field := range f.Fields() {
		want := 80 - len(field.Label()) - 5
		if field.Width() != want {
			t.Errorf("field %s width = %d, want %d", field.ID(), field.Width(), want)
		}
	}
}
