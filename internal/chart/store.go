package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	dcerrors "github.com/wexinc/depthchart/internal/errors"
	"github.com/wexinc/depthchart/internal/logging"
)

// DefaultFilename is the chart file used when no path is configured.
const DefaultFilename = "depth_chart.json"

// Placement describes where a player ended up after Add or Move.
type Placement struct {
	Player   string
	Position Position
	// Rank is the 1-based string position the player now occupies.
	Rank int
}

// String renders the placement the way the menu reports it.
func (p Placement) String() string {
	return fmt.Sprintf("%s as the %s string %s", p.Player, Ordinal(p.Rank), p.Position)
}

// Store owns the depth chart and its JSON file. Every successful mutation
// rewrites the whole file.
type Store struct {
	path   string
	mu     sync.RWMutex
	chart  Chart
	logger *logging.Logger
}

// NewStore creates a Store backed by path with an empty chart.
// It does not read the file; call Load() for that, or use Open.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFilename
	}
	return &Store{
		path:   path,
		chart:  NewChart(),
		logger: logging.Global(),
	}
}

// Open creates a Store for path and loads any existing chart from it.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger replaces the logger used for store events.
func (s *Store) SetLogger(l *logging.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l == nil {
		l = logging.NewNoop()
	}
	s.logger = l
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the chart from the JSON file.
// If the file doesn't exist, the chart is reset to empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.chart = NewChart()
			s.logger.Info("no saved depth chart found, starting empty", "path", s.path)
			return nil
		}
		return dcerrors.StorageRead(s.path, err)
	}

	c, unknown, err := decode(data)
	if err != nil {
		return dcerrors.StorageRead(s.path, err)
	}
	for _, key := range unknown {
		s.logger.Warn("dropping unknown position from chart file", "path", s.path, "key", key)
	}

	s.chart = c
	s.logger.Debug("depth chart loaded", "path", s.path, "players", c.Len())
	return nil
}

// Save writes the chart to the JSON file, overwriting it.
// Creates parent directories if they don't exist.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.Marshal(s.chart)
	if err != nil {
		return dcerrors.StorageWrite(s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return dcerrors.StorageWrite(s.path, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return dcerrors.StorageWrite(s.path, err)
	}

	s.logger.Debug("depth chart saved", "path", s.path)
	return nil
}

// Chart returns a copy of the current chart.
func (s *Store) Chart() Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart.Clone()
}

// Players returns a copy of the players listed at position.
func (s *Store) Players(position string) ([]string, error) {
	pos, ok := Normalize(position)
	if !ok {
		return nil, dcerrors.UnknownPosition(position)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart.Players(pos), nil
}

// Add appends player to the bottom of position's list and saves.
// The name is stored with surrounding whitespace trimmed.
// A position already holding MaxDepth players is left untouched.
func (s *Store) Add(position, player string) (Placement, error) {
	pos, ok := Normalize(position)
	if !ok {
		return Placement{}, dcerrors.UnknownPosition(position)
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return Placement{}, dcerrors.BlankPlayer()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chart[pos]) >= MaxDepth {
		return Placement{}, dcerrors.ChartFull(string(pos), Ordinal(MaxDepth))
	}

	s.chart[pos] = append(s.chart[pos], player)
	placed := Placement{Player: player, Position: pos, Rank: len(s.chart[pos])}
	s.logger.Info("player added", "player", player, "position", pos, "rank", placed.Rank)

	return placed, s.saveLocked()
}

// CheckMove validates a move without changing anything: both positions must
// resolve and player must be listed at current. It returns the resolved codes.
func (s *Store) CheckMove(current, player, next string) (Position, Position, error) {
	from, okFrom := Normalize(current)
	to, okTo := Normalize(next)
	if !okFrom || !okTo {
		return "", "", dcerrors.UnknownPositions(current, next)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.chart.index(from, strings.TrimSpace(player)) < 0 {
		return "", "", dcerrors.PlayerNotFound(strings.TrimSpace(player), string(from))
	}
	return from, to, nil
}

// Move takes player off current's list and inserts them at rank in next's
// list, then saves. If next has fewer than rank players the player is
// appended instead. Unlike Add, Move does not cap the target list at
// MaxDepth.
func (s *Store) Move(current, player, next string, rank int) (Placement, error) {
	from, to, err := s.CheckMove(current, player, next)
	if err != nil {
		return Placement{}, err
	}
	if err := ValidateRank(rank); err != nil {
		return Placement{}, err
	}
	player = strings.TrimSpace(player)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.chart.index(from, player)
	if i < 0 {
		return Placement{}, dcerrors.PlayerNotFound(player, string(from))
	}
	s.chart[from] = append(s.chart[from][:i:i], s.chart[from][i+1:]...)
	s.logger.Info("player removed", "player", player, "position", from)

	target := s.chart[to]
	at := rank - 1
	if at > len(target) {
		at = len(target)
	}
	target = append(target, "")
	copy(target[at+1:], target[at:])
	target[at] = player
	s.chart[to] = target

	placed := Placement{Player: player, Position: to, Rank: at + 1}
	if len(target) > MaxDepth {
		s.logger.Warn("position exceeds max depth after move", "position", to, "players", len(target))
	}
	s.logger.Info("player moved", "player", player, "from", from, "to", to, "rank", placed.Rank)

	return placed, s.saveLocked()
}
