package chart

import (
	"bytes"
	"encoding/json"
)

// MaxDepth is the number of string positions Add will fill for one position.
const MaxDepth = 4

// Chart maps every position code to its players, ordered 1st string first.
type Chart map[Position][]string

// NewChart returns a chart with every position present and empty.
func NewChart() Chart {
	c := make(Chart, len(Positions))
	for _, p := range Positions {
		c[p] = []string{}
	}
	return c
}

// Players returns a copy of the players listed at p.
func (c Chart) Players(p Position) []string {
	players := make([]string, len(c[p]))
	copy(players, c[p])
	return players
}

// Clone returns a deep copy of the chart.
func (c Chart) Clone() Chart {
	clone := make(Chart, len(c))
	for p := range c {
		clone[p] = c.Players(p)
	}
	return clone
}

// Len returns the number of players listed across all positions.
func (c Chart) Len() int {
	n := 0
	for _, players := range c {
		n += len(players)
	}
	return n
}

// index returns the position of player in p's list, or -1.
func (c Chart) index(p Position, player string) int {
	for i, name := range c[p] {
		if name == player {
			return i
		}
	}
	return -1
}

// MarshalJSON writes the chart as a compact object with keys in chart order.
// Empty positions are written as [] rather than null.
func (c Chart) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range Positions {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(p))
		if err != nil {
			return nil, err
		}
		players := c[p]
		if players == nil {
			players = []string{}
		}
		val, err := json.Marshal(players)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the chart with the decoded object. Unknown keys are
// dropped and missing positions are filled in empty.
func (c *Chart) UnmarshalJSON(data []byte) error {
	decoded, _, err := decode(data)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// decode parses a persisted chart and reports any keys that are not position
// codes.
func decode(data []byte) (Chart, []string, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	c := NewChart()
	var unknown []string
	for key, players := range raw {
		p := Position(key)
		if !p.IsValid() {
			unknown = append(unknown, key)
			continue
		}
		if players != nil {
			c[p] = players
		}
	}
	return c, unknown, nil
}
