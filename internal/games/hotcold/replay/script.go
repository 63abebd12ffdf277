// Package replay drives the hot/cold engine headlessly from input scripts.
// A script lists timestamped intent changes and jump presses for both
// actors; running it against a level produces a deterministic Result.
package replay

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// DefaultMaxTicks bounds scripts that do not set max_ticks (one minute at
// 60 ticks per second).
const DefaultMaxTicks = 3600

// Move values accepted in a script.
const (
	MoveNone  = "none"
	MoveLeft  = "left"
	MoveRight = "right"
)

// Event is one input change. It is applied right before the tick with the
// same number is simulated. An empty Move leaves the intent unchanged.
type Event struct {
	Tick  uint64 `yaml:"tick"`
	Actor string `yaml:"actor"`
	Move  string `yaml:"move,omitempty"`
	Jump  bool   `yaml:"jump,omitempty"`
}

// Script is a complete replay.
type Script struct {
	Level    string  `yaml:"level"`
	MaxTicks uint64  `yaml:"max_ticks,omitempty"`
	Events   []Event `yaml:"events"`
}

// Parse decodes and validates a YAML script. Events are sorted by tick;
// events on the same tick keep their file order.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Tick < s.Events[j].Tick
	})
	return s, nil
}

// ReadFile loads a script from disk.
func ReadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes a script as YAML.
func (s Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks actor names, moves and tick numbers.
func (s Script) Validate() error {
	if s.Level == "" {
		return fmt.Errorf("script has no level")
	}
	for i, ev := range s.Events {
		if ev.Tick == 0 {
			return fmt.Errorf("event %d: ticks start at 1", i)
		}
		if _, err := core.ParseElement(ev.Actor); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		switch ev.Move {
		case "", MoveNone, MoveLeft, MoveRight:
		default:
			return fmt.Errorf("event %d: unknown move %q", i, ev.Move)
		}
	}
	return nil
}

// Limit returns the effective tick limit.
func (s Script) Limit() uint64 {
	if s.MaxTicks == 0 {
		return DefaultMaxTicks
	}
	return s.MaxTicks
}
