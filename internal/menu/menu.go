// Package menu runs the numbered, line-oriented depth chart menu.
package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/wexinc/depthchart/internal/chart"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
	"github.com/wexinc/depthchart/internal/logging"
	"github.com/wexinc/depthchart/internal/prompt"
)

// Choice is a numbered menu entry.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceMove
	ChoiceChart
	ChoiceLineup
	ChoiceExit
)

// Title is printed above the menu options.
const Title = "Football Depth Chart Manager"

var choiceLabels = map[Choice]string{
	ChoiceAdd:    "Add Player",
	ChoiceMove:   "Move Player",
	ChoiceChart:  "View Depth Chart",
	ChoiceLineup: "View Starting 11",
	ChoiceExit:   "Exit",
}

// Label returns the text shown next to the choice number.
func (c Choice) Label() string {
	return choiceLabels[c]
}

// Choices lists the menu entries in display order.
func Choices() []Choice {
	return []Choice{ChoiceAdd, ChoiceMove, ChoiceChart, ChoiceLineup, ChoiceExit}
}

// Menu drives a chart.Store from a prompt.Prompter until the user exits or
// input ends.
type Menu struct {
	store    *chart.Store
	prompter *prompt.Prompter
	out      io.Writer
	logger   *logging.Logger

	title   *color.Color
	success *color.Color
	failure *color.Color
}

// New creates a Menu. Output goes to the prompter's writer.
func New(store *chart.Store, p *prompt.Prompter) *Menu {
	return &Menu{
		store:    store,
		prompter: p,
		out:      p.Out(),
		logger:   logging.Global(),
		title:    color.New(color.FgBlue, color.Bold),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
}

// SetColor forces colored status lines on or off.
func (m *Menu) SetColor(enabled bool) {
	for _, c := range []*color.Color{m.title, m.success, m.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// SetLogger replaces the logger used for menu events.
func (m *Menu) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NewNoop()
	}
	m.logger = l
}

// Run shows the menu until Exit is chosen. End of input ends the loop
// without an error. Store errors are reported and the menu is shown again.
func (m *Menu) Run() error {
	for {
		m.printOptions()

		raw, err := m.prompter.Ask("Select an option (1-5): ")
		if err != nil {
			return m.finish(err)
		}

		choice, ok := parseChoice(raw)
		if !ok {
			fmt.Fprintln(m.out, "Invalid option. Please choose again.")
			continue
		}
		m.logger.Debug("menu choice", "choice", choice.Label())

		switch choice {
		case ChoiceAdd:
			err = m.add()
		case ChoiceMove:
			err = m.move()
		case ChoiceChart:
			err = chart.RenderChart(m.out, m.store.Chart())
		case ChoiceLineup:
			err = chart.RenderStartingEleven(m.out, m.store.Chart())
		case ChoiceExit:
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if prompt.IsEOF(err) {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Exiting the program.")
		return nil
	}
	return err
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out)
	m.title.Fprintln(m.out, Title)
	for _, c := range Choices() {
		fmt.Fprintf(m.out, "%d. %s\n", c, c.Label())
	}
}

func parseChoice(raw string) (Choice, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	c := Choice(n)
	if c < ChoiceAdd || c > ChoiceExit {
		return 0, false
	}
	return c, true
}

// add returns only read errors; store errors are printed.
func (m *Menu) add() error {
	position, err := m.prompter.Ask("Enter the position: ")
	if err != nil {
		return err
	}
	player, err := prompt.AskValid(m.prompter, "Enter the player's name: ", prompt.NonEmpty("Player name cannot be empty."))
	if err != nil {
		return err
	}

	placed, err := m.store.Add(position, player)
	if err != nil {
		m.report(err)
		// The player stays added in memory when only the save failed.
		if placed.Player == "" {
			return nil
		}
	}
	m.success.Fprintf(m.out, "Added %s.\n", placed)
	if err == nil {
		m.success.Fprintln(m.out, "Depth chart saved successfully.")
	}
	return nil
}

func (m *Menu) move() error {
	current, err := m.prompter.Ask("Enter the current position of the player: ")
	if err != nil {
		return err
	}
	player, err := m.prompter.Ask("Enter the player's name: ")
	if err != nil {
		return err
	}
	next, err := m.prompter.Ask("Enter the new position for the player: ")
	if err != nil {
		return err
	}

	from, to, err := m.store.CheckMove(current, player, next)
	if err != nil {
		m.report(err)
		return nil
	}
	player = strings.TrimSpace(player)

	label := fmt.Sprintf("Enter the string position (%d-%d) for %s in %s: ", chart.MinRank, chart.MaxRank, player, to)
	rank, err := prompt.AskValid(m.prompter, label, prompt.Rank)
	if err != nil {
		return err
	}

	placed, err := m.store.Move(string(from), player, string(to), rank)
	if err != nil {
		m.report(err)
		if placed.Player == "" {
			return nil
		}
	}
	m.success.Fprintf(m.out, "Removed %s from %s.\n", player, from)
	m.success.Fprintf(m.out, "Added %s.\n", placed)
	if err == nil {
		m.success.Fprintln(m.out, "Depth chart saved successfully.")
	}
	return nil
}

func (m *Menu) report(err error) {
	m.logger.Warn("menu action failed", "error", err)
	m.failure.Fprintln(m.out, dcerrors.Message(err))
}
