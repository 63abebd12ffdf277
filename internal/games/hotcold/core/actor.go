package core

import (
	"github.com/go-gl/mathgl/mgl64"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
)

// Actor is a kinematic body controlled by one player.
type Actor struct {
	Element  Element
	Rect     Rect
	Velocity mgl64.Vec2
	Grounded bool
	Alive    bool

	// Controller intent. JumpRequested is a one-shot flag consumed by the
	// next tick whether or not the jump fires.
	JumpRequested bool
	MovingLeft    bool
	MovingRight   bool

	// AirFrames counts consecutive ticks spent off the ground.
	AirFrames int
}

func newActor(e Element, spawn mgl64.Vec2, p Params) Actor {
	return Actor{
		Element: e,
		Rect:    platformcore.RectAt(spawn, p.ActorW, p.ActorH),
		Alive:   true,
	}
}

// Position returns the top-left corner of the actor.
func (a *Actor) Position() mgl64.Vec2 {
	return a.Rect.Pos()
}

// horizontalSpeed returns the velocity implied by the intent flags.
// Opposite intents cancel out.
func (a *Actor) horizontalSpeed(p Params) float64 {
	switch {
	case a.MovingLeft && !a.MovingRight:
		return -p.Speed
	case a.MovingRight && !a.MovingLeft:
		return p.Speed
	default:
		return 0
	}
}

// move applies intent, gravity and displacement for one tick, resolving
// each axis against the solid blocks separately.
func (a *Actor) move(p Params, solids []Rect) {
	a.Velocity[0] = a.horizontalSpeed(p)

	if a.JumpRequested && a.AirFrames < p.JumpBuffer {
		a.Velocity[1] = p.JumpImpulse
	}
	a.JumpRequested = false

	a.Velocity[1] = min(a.Velocity[1]+p.Gravity, p.MaxFallSpeed)

	a.Rect = a.Rect.Translate(mgl64.Vec2{a.Velocity.X(), 0})
	a.Rect = ResolveHorizontal(a.Rect, solids).Rect

	a.Rect = a.Rect.Translate(mgl64.Vec2{0, a.Velocity.Y()})
	a.Grounded = false
	a.applyVertical(ResolveVertical(a.Rect, solids))
}

// pushOut resolves the actor against extra blocks such as closed gates.
func (a *Actor) pushOut(blocks []Rect) {
	res := PushOut(a.Rect, blocks)
	a.Rect = res.Rect
	if res.Landed || res.Ceiling {
		a.applyVertical(res)
	}
}

func (a *Actor) applyVertical(res Resolution) {
	a.Rect = res.Rect
	if res.Landed {
		a.Velocity[1] = 0
		a.Grounded = true
	}
	if res.Ceiling {
		a.Velocity[1] = 0
	}
}

// settle updates the airborne counter once all push-out is done.
func (a *Actor) settle() {
	if a.Grounded {
		a.AirFrames = 0
		return
	}
	a.AirFrames++
}
