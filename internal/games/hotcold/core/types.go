// Package core implements the hot/cold simulation engine: two elemental
// actors moving through a tile world, hazard pools, doors and gates.
// This package is UI-agnostic and deterministic. It never logs; everything
// that happens during a tick is reported as an Event.
package core

import "fmt"

// Element is the elemental affinity of an actor.
type Element uint8

const (
	Hot Element = iota
	Cold
)

// Elements lists both actors in update order.
var Elements = [...]Element{Hot, Cold}

// String returns the lowercase name of the element.
func (e Element) String() string {
	switch e {
	case Hot:
		return "hot"
	case Cold:
		return "cold"
	default:
		return fmt.Sprintf("element(%d)", uint8(e))
	}
}

// ParseElement converts "hot" or "cold" to an Element.
func ParseElement(s string) (Element, error) {
	switch s {
	case "hot":
		return Hot, nil
	case "cold":
		return Cold, nil
	default:
		return 0, fmt.Errorf("unknown element %q", s)
	}
}

// Tile is a tile-type token from the level grid.
// The empty token is air, the three hazard tokens are pools,
// and every other token is solid ground.
type Tile string

const (
	TileEmpty Tile = ""
	TileLava  Tile = "lava"
	TileWater Tile = "water"
	TileGoo   Tile = "goo"
)

// Hazard returns the hazard a tile produces, or HazardNone.
func (t Tile) Hazard() Hazard {
	switch t {
	case TileLava:
		return HazardLava
	case TileWater:
		return HazardWater
	case TileGoo:
		return HazardGoo
	default:
		return HazardNone
	}
}

// IsSolid reports whether the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t != TileEmpty && t.Hazard() == HazardNone
}

// Hazard identifies a kind of hazard pool.
type Hazard uint8

const (
	HazardNone Hazard = iota
	HazardLava
	HazardWater
	HazardGoo
)

// String returns the lowercase name of the hazard.
func (h Hazard) String() string {
	switch h {
	case HazardLava:
		return "lava"
	case HazardWater:
		return "water"
	case HazardGoo:
		return "goo"
	default:
		return "none"
	}
}

// Kills reports whether a pool of this hazard is lethal to the element.
// Lava kills cold, water kills hot, goo kills both.
func (h Hazard) Kills(e Element) bool {
	switch h {
	case HazardLava:
		return e == Cold
	case HazardWater:
		return e == Hot
	case HazardGoo:
		return true
	default:
		return false
	}
}

// Outcome is the terminal state of a level attempt.
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the attempt.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}
