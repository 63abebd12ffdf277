package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
)

// DoorKind binds a door to the element that can open and use it.
type DoorKind uint8

const (
	FireDoor DoorKind = iota
	WaterDoor
)

// Element returns the actor element bound to this kind of door.
func (k DoorKind) Element() Element {
	if k == WaterDoor {
		return Cold
	}
	return Hot
}

// Admits reports whether an actor of element e operates this door.
func (k DoorKind) Admits(e Element) bool {
	return k.Element() == e
}

// String returns "fire" or "water".
func (k DoorKind) String() string {
	switch k {
	case FireDoor:
		return "fire"
	case WaterDoor:
		return "water"
	default:
		return fmt.Sprintf("door(%d)", uint8(k))
	}
}

// ParseDoorKind converts "fire" or "water" to a DoorKind.
func ParseDoorKind(s string) (DoorKind, error) {
	switch s {
	case "fire":
		return FireDoor, nil
	case "water":
		return WaterDoor, nil
	default:
		return 0, fmt.Errorf("unknown door kind %q", s)
	}
}

// DoorState is the phase of the door ramp.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorRaising
	DoorOpen
	DoorLowering
)

// String returns the lowercase name of the state.
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorRaising:
		return "raising"
	case DoorOpen:
		return "open"
	case DoorLowering:
		return "lowering"
	default:
		return "unknown"
	}
}

// DoorID is an index handle into the loaded level's doors.
type DoorID int

// Door is an exit that ramps open while its bound actor stands nearby.
// Rect is the fixed doorway used for detection and the win check;
// Raise only moves the drawn panel.
type Door struct {
	Kind    DoorKind
	Rect    Rect
	Raise   float64
	Open    bool
	InRange bool
	State   DoorState
}

func newDoor(spec DoorSpec, p Params) Door {
	return Door{
		Kind: spec.Kind,
		Rect: platformcore.RectAt(spec.Pos, p.DoorW, p.DoorH),
	}
}

// PanelRect returns the door panel shifted up by the raise offset.
func (d *Door) PanelRect() Rect {
	return d.Rect.Translate(mgl64.Vec2{0, -d.Raise})
}

// DetectionZone returns the area in which the bound actor is noticed.
func (d *Door) DetectionZone(p Params) Rect {
	return d.Rect.Expand(p.DoorDetectMargin)
}

// update advances the ramp one tick. It returns the transition that
// happened, if any: DoorOpen when the door latched open, DoorClosed when
// it finished lowering.
func (d *Door) update(p Params, actors []Actor) (DoorState, bool) {
	zone := d.DetectionZone(p)
	d.InRange = lo.ContainsBy(actors, func(a Actor) bool {
		return a.Alive && d.Kind.Admits(a.Element) && a.Rect.Intersects(zone)
	})

	switch {
	case d.InRange && !d.Open:
		d.Raise += p.DoorSpeed
		if d.Raise >= p.DoorOpenThreshold {
			d.Open = true
			d.State = DoorOpen
			return DoorOpen, true
		}
		d.State = DoorRaising
	case !d.InRange && d.Raise > 0:
		d.Open = false
		d.Raise = max(0, d.Raise-p.DoorSpeed)
		if d.Raise == 0 {
			d.State = DoorClosed
			return DoorClosed, true
		}
		d.State = DoorLowering
	}
	return d.State, false
}
