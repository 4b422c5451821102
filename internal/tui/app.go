// Package tui provides the Bubble Tea interface for the depth chart.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/depthchart/internal/chart"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
	"github.com/wexinc/depthchart/internal/logging"
	"github.com/wexinc/depthchart/internal/menu"
	"github.com/wexinc/depthchart/internal/prompt"
	"github.com/wexinc/depthchart/internal/tui/components"
	"github.com/wexinc/depthchart/internal/tui/styles"
)

// Screen is the view the model is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenForm
	ScreenChart
	ScreenLineup
)

// Form field identifiers.
const (
	fieldPosition = "position"
	fieldPlayer   = "player"
	fieldCurrent  = "current"
	fieldNew      = "new"
	fieldRank     = "rank"
)

// Model is the Bubble Tea model for the depth chart menu.
type Model struct {
	store  *chart.Store
	logger *logging.Logger

	screen  Screen
	choices []menu.Choice
	cursor  int
	action  menu.Choice
	form    *components.Form

	status    string
	statusErr bool

	menuHelp *components.ShortcutBar
	viewHelp *components.ShortcutBar

	width    int
	quitting bool
}

// New creates a model over store.
func New(store *chart.Store) *Model {
	return &Model{
		store:    store,
		logger:   logging.Global(),
		screen:   ScreenMenu,
		choices:  menu.Choices(),
		menuHelp: components.NewShortcutBar(components.MenuShortcuts...),
		viewHelp: components.NewShortcutBar(components.ViewShortcuts...),
	}
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Screen returns the current screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Cursor returns the highlighted menu index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Form returns the open form, or nil.
func (m *Model) Form() *components.Form {
	return m.form
}

// Status returns the last status line and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			m.form.SetWidth(m.width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.screen {
		case ScreenMenu:
			return m.updateMenu(msg)
		case ScreenForm:
			return m.updateForm(msg)
		default:
			return m.updateView(msg)
		}
	}

	if m.screen == ScreenForm && m.form != nil {
		_, cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.choose(m.choices[m.cursor])
	default:
		for i, c := range m.choices {
			if key == fmt.Sprint(int(c)) {
				m.cursor = i
				return m.choose(c)
			}
		}
	}
	return m, nil
}

func (m *Model) choose(c menu.Choice) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false
	m.action = c
	m.logger.Debug("menu choice", "choice", c.Label())

	switch c {
	case menu.ChoiceAdd:
		m.form = components.NewForm("add", c.Label(),
			components.NewTextInput(fieldPosition, "Position"),
			components.NewTextInput(fieldPlayer, "Player name"),
		)
	case menu.ChoiceMove:
		m.form = components.NewForm("move", c.Label(),
			components.NewTextInput(fieldCurrent, "Current position"),
			components.NewTextInput(fieldPlayer, "Player name"),
			components.NewTextInput(fieldNew, "New position"),
			components.NewTextInput(fieldRank, fmt.Sprintf("String position (%d-%d)", chart.MinRank, chart.MaxRank)),
		)
	case menu.ChoiceChart:
		m.screen = ScreenChart
		return m, nil
	case menu.ChoiceLineup:
		m.screen = ScreenLineup
		return m, nil
	case menu.ChoiceExit:
		return m.quit()
	}

	m.form.Field(fieldPlayer).SetPlaceholder("e.g. Tom Brady")
	if m.width > 0 {
		m.form.SetWidth(m.width)
	}
	m.screen = ScreenForm
	return m, m.form.Focus()
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := m.form.Update(msg)

	switch {
	case m.form.Canceled():
		m.backToMenu("Canceled.", false)
		return m, nil
	case m.form.Submitted():
		if m.action == menu.ChoiceAdd {
			return m, m.submitAdd()
		}
		return m, m.submitMove()
	}
	return m, cmd
}

func (m *Model) submitAdd() tea.Cmd {
	position := m.form.Value(fieldPosition)
	if _, ok := chart.Normalize(position); !ok {
		return m.form.Fail(fieldPosition, dcerrors.Message(dcerrors.UnknownPosition(position)))
	}
	if m.form.Value(fieldPlayer) == "" {
		return m.form.Fail(fieldPlayer, dcerrors.Message(dcerrors.BlankPlayer()))
	}

	placed, err := m.store.Add(position, m.form.Value(fieldPlayer))
	m.finish(placed, err)
	return nil
}

func (m *Model) submitMove() tea.Cmd {
	current := m.form.Value(fieldCurrent)
	next := m.form.Value(fieldNew)
	player := m.form.Value(fieldPlayer)

	if _, _, err := m.store.CheckMove(current, player, next); err != nil {
		field := fieldPlayer
		if errors.Is(err, dcerrors.ErrUnknownPosition) {
			field = fieldNew
			if _, ok := chart.Normalize(current); !ok {
				field = fieldCurrent
			}
		}
		return m.form.Fail(field, dcerrors.Message(err))
	}

	rank, err := prompt.Rank(m.form.Value(fieldRank))
	if err != nil {
		return m.form.Fail(fieldRank, dcerrors.Message(err))
	}

	placed, err := m.store.Move(current, player, next, rank)
	m.finish(placed, err)
	return nil
}

// finish reports the result of a store mutation and returns to the menu.
// A failed save still reports the in-memory placement.
func (m *Model) finish(placed chart.Placement, err error) {
	if err != nil {
		m.logger.Warn("menu action failed", "error", err)
		msg := dcerrors.Message(err)
		if placed.Player != "" {
			msg = fmt.Sprintf("Added %s, but %s", placed, strings.ToLower(msg[:1])+msg[1:])
		}
		m.backToMenu(msg, true)
		return
	}
	m.backToMenu(fmt.Sprintf("Added %s.", placed), false)
}

func (m *Model) backToMenu(status string, isErr bool) {
	m.screen = ScreenMenu
	m.form = nil
	m.status = status
	m.statusErr = isErr
}

func (m *Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace", "q":
		m.screen = ScreenMenu
	}
	return m, nil
}

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(menu.Title))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenMenu:
		b.WriteString(m.menuView())
	case ScreenForm:
		b.WriteString(m.form.View())
	case ScreenChart:
		b.WriteString(m.box().Render(strings.Trim(chart.FormatChart(m.store.Chart()), "\n")))
		b.WriteString("\n\n")
		b.WriteString(m.viewHelp.View())
	case ScreenLineup:
		b.WriteString(m.box().Render(strings.Trim(chart.FormatStartingEleven(m.store.Chart()), "\n")))
		b.WriteString("\n\n")
		b.WriteString(m.viewHelp.View())
	}
	b.WriteString("\n")
	return b.String()
}

// box returns the chart frame stretched to the window width, once known.
func (m *Model) box() lipgloss.Style {
	if m.width <= 0 {
		return styles.BoxStyle
	}
	return styles.BoxStyle.Width(m.width - styles.BoxStyle.GetHorizontalBorderSize())
}

func (m *Model) menuView() string {
	var b strings.Builder
	for i, c := range m.choices {
		line := fmt.Sprintf("%d. %s", c, c.Label())
		if i == m.cursor {
			b.WriteString(styles.MenuItemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(styles.MenuItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styles.ErrorTextStyle.Render(m.status))
		} else {
			b.WriteString(styles.SuccessTextStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.menuHelp.View())
	return b.String()
}

// Run starts the TUI over store and blocks until it exits.
func Run(store *chart.Store) error {
	p := tea.NewProgram(New(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
