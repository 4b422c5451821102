package chart

import (
	"fmt"
	"io"
	"strings"
)

// NotFilled marks a starting slot with no player behind it.
const NotFilled = "[Position not filled]"

// Requirement is how many starters a formation takes from one position.
type Requirement struct {
	Position Position
	Count    int
}

// Formations used by the starting eleven view.
var (
	Offense = []Requirement{
		{QB, 1}, {RB, 1}, {TE, 1}, {LT, 1}, {RT, 1},
		{LG, 1}, {RG, 1}, {C, 1}, {WR, 3},
	}
	Defense = []Requirement{
		{DE, 2}, {DT, 2}, {LB, 3}, {S, 2}, {CB, 2},
	}
)

// LineupSlot is one starter in a formation.
type LineupSlot struct {
	Position Position
	Player   string
	Filled   bool
}

// LineupGroup is a named formation and its slots in display order.
type LineupGroup struct {
	Name  string
	Slots []LineupSlot
}

// StartingEleven fills the offense and defense formations from c. Slots past
// the end of a position's list are marked NotFilled.
func StartingEleven(c Chart) []LineupGroup {
	return []LineupGroup{
		{Name: "Offense", Slots: fill(c, Offense)},
		{Name: "Defense", Slots: fill(c, Defense)},
	}
}

func fill(c Chart, formation []Requirement) []LineupSlot {
	var slots []LineupSlot
	for _, req := range formation {
		players := c[req.Position]
		for i := 0; i < req.Count; i++ {
			slot := LineupSlot{Position: req.Position, Player: NotFilled}
			if i < len(players) {
				slot.Player = players[i]
				slot.Filled = true
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// Ordinal returns n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// FormatChart renders every position in chart order with its ranked players.
func FormatChart(c Chart) string {
	var sb strings.Builder
	sb.WriteString("\n--- Football Depth Chart ---\n")
	for _, p := range Positions {
		fmt.Fprintf(&sb, "\n%s (%s):\n", p, p.FullName())
		players := c[p]
		if len(players) == 0 {
			sb.WriteString("  No players assigned.\n")
			continue
		}
		for i, name := range players {
			fmt.Fprintf(&sb, "  %s String: %s\n", Ordinal(i+1), name)
		}
	}
	return sb.String()
}

// FormatStartingEleven renders the offense and defense starters.
func FormatStartingEleven(c Chart) string {
	var sb strings.Builder
	sb.WriteString("\n--- Starting 11 ---\n")
	for _, group := range StartingEleven(c) {
		fmt.Fprintf(&sb, "\n%s:\n", group.Name)
		for _, slot := range group.Slots {
			fmt.Fprintf(&sb, "  %s: %s\n", slot.Position, slot.Player)
		}
	}
	return sb.String()
}

// RenderChart writes FormatChart(c) to w.
func RenderChart(w io.Writer, c Chart) error {
	_, err := io.WriteString(w, FormatChart(c))
	return err
}

// RenderStartingEleven writes FormatStartingEleven(c) to w.
func RenderStartingEleven(w io.Writer, c Chart) error {
	_, err := io.WriteString(w, FormatStartingEleven(c))
	return err
}
