// Package chart provides the depth chart data model and its JSON-backed store.
package chart

import (
	"strings"
)

// Position is the canonical code of a roster role.
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
	LT Position = "LT"
	LG Position = "LG"
	C  Position = "C"
	RG Position = "RG"
	RT Position = "RT"
	DE Position = "DE"
	DT Position = "DT"
	LB Position = "LB"
	CB Position = "CB"
	S  Position = "S"
	K  Position = "K"
	P  Position = "P"
	KR Position = "KR"
	PR Position = "PR"
)

// Positions lists every position code in chart order.
var Positions = []Position{QB, RB, WR, TE, LT, LG, C, RG, RT, DE, DT, LB, CB, S, K, P, KR, PR}

// fullNames maps each code to its spelled-out name. Together with the
// lowercase code it forms the alias set accepted by Normalize.
var fullNames = map[Position]string{
	QB: "Quarterback",
	RB: "Running Back",
	WR: "Wide Receiver",
	TE: "Tight End",
	LT: "Left Tackle",
	LG: "Left Guard",
	C:  "Center",
	RG: "Right Guard",
	RT: "Right Tackle",
	DE: "Defensive End",
	DT: "Defensive Tackle",
	LB: "Linebacker",
	CB: "Cornerback",
	S:  "Safety",
	K:  "Kicker",
	P:  "Punter",
	KR: "Kick Returner",
	PR: "Punt Returner",
}

var aliases = buildAliases()

func buildAliases() map[string]Position {
	m := make(map[string]Position, len(fullNames)*2)
	for pos, name := range fullNames {
		m[strings.ToLower(string(pos))] = pos
		m[strings.ToLower(name)] = pos
	}
	return m
}

// Normalize resolves user input to a position code. Input is trimmed and
// matched case-insensitively against each code and its full name.
func Normalize(input string) (Position, bool) {
	pos, ok := aliases[strings.ToLower(strings.TrimSpace(input))]
	return pos, ok
}

// Aliases returns the accepted lowercase inputs for p: the code first, then
// the full name.
func Aliases(p Position) []string {
	name, ok := fullNames[p]
	if !ok {
		return nil
	}
	return []string{strings.ToLower(string(p)), strings.ToLower(name)}
}

// FullName returns the spelled-out name of p, or the code itself if unknown.
func (p Position) FullName() string {
	if name, ok := fullNames[p]; ok {
		return name
	}
	return string(p)
}

// IsValid reports whether p is one of the known position codes.
func (p Position) IsValid() bool {
	_, ok := fullNames[p]
	return ok
}

// String returns the position code.
func (p Position) String() string {
	return string(p)
}
