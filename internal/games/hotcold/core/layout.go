package core

import "github.com/go-gl/mathgl/mgl64"

// DoorSpec places a door by its top-left corner.
type DoorSpec struct {
	Kind DoorKind
	Pos  mgl64.Vec2
}

// GateSpec places a gate and its pressure plates by their top-left corners.
type GateSpec struct {
	Pos    mgl64.Vec2
	Plates []mgl64.Vec2
}

// Layout is the static, level-specific placement of entities.
// Restart rebuilds every actor, door and gate from it.
type Layout struct {
	HotSpawn  mgl64.Vec2
	ColdSpawn mgl64.Vec2
	Doors     []DoorSpec
	Gates     []GateSpec
}

// Spawn returns the spawn point for an element.
func (l Layout) Spawn(e Element) mgl64.Vec2 {
	if e == Cold {
		return l.ColdSpawn
	}
	return l.HotSpawn
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	out := l
	out.Doors = append([]DoorSpec(nil), l.Doors...)
	out.Gates = make([]GateSpec, len(l.Gates))
	for i, g := range l.Gates {
		out.Gates[i] = GateSpec{Pos: g.Pos, Plates: append([]mgl64.Vec2(nil), g.Plates...)}
	}
	return out
}
