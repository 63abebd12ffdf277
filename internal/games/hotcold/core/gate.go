package core

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
)

// GateID is an index handle into the loaded level's gates.
type GateID int

// Gate is a barrier opened by standing on any of its pressure plates.
// Opening and closing are single-tick snaps of the gate rectangle.
type Gate struct {
	Rect    Rect
	Plates  []Rect
	Pressed bool
	Open    bool
}

func newGate(spec GateSpec, p Params) Gate {
	g := Gate{
		Rect:   platformcore.RectAt(spec.Pos, p.GateW, p.GateH),
		Plates: make([]Rect, 0, len(spec.Plates)),
	}
	for _, pos := range spec.Plates {
		g.Plates = append(g.Plates, platformcore.RectAt(pos, p.PlateW, p.PlateH))
	}
	return g
}

// PlatePressed reports whether plate i is occupied by a living actor.
func (g *Gate) PlatePressed(i int, actors []Actor) bool {
	if i < 0 || i >= len(g.Plates) {
		return false
	}
	return occupied(g.Plates[i], actors)
}

func occupied(plate Rect, actors []Actor) bool {
	return lo.ContainsBy(actors, func(a Actor) bool {
		return a.Alive && a.Rect.Intersects(plate)
	})
}

// update samples plate occupancy and snaps the gate on a press or release
// edge. It returns true when the gate changed state this tick.
func (g *Gate) update(p Params, actors []Actor) bool {
	pressed := lo.ContainsBy(g.Plates, func(plate Rect) bool {
		return occupied(plate, actors)
	})

	changed := false
	switch {
	case pressed && !g.Pressed:
		g.Rect = g.Rect.Translate(mgl64.Vec2{0, -p.GateOpenOffset})
		g.Open = true
		changed = true
	case !pressed && g.Pressed:
		g.Rect = g.Rect.Translate(mgl64.Vec2{0, p.GateOpenOffset})
		g.Open = false
		changed = true
	}
	g.Pressed = pressed
	return changed
}
