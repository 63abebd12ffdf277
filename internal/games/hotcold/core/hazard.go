package core

// hazardOrder is the fixed order in which pools are checked.
var hazardOrder = [...]Hazard{HazardLava, HazardWater, HazardGoo}

// LethalHazard returns the first pool kind that kills an actor of element e
// whose body is at r, or HazardNone. Pools of the actor's own element are
// harmless.
func LethalHazard(w *World, e Element, r Rect) Hazard {
	for _, h := range hazardOrder {
		if !h.Kills(e) {
			continue
		}
		for _, pool := range w.Pools(h) {
			if r.Intersects(pool) {
				return h
			}
		}
	}
	return HazardNone
}

// evaluateHazards marks the actor dead if it touches a lethal pool and
// reports which hazard killed it.
func evaluateHazards(w *World, a *Actor) (Hazard, bool) {
	if !a.Alive {
		return HazardNone, false
	}
	h := LethalHazard(w, a.Element, a.Rect)
	if h == HazardNone {
		return HazardNone, false
	}
	a.Alive = false
	a.Velocity = a.Velocity.Mul(0)
	a.MovingLeft, a.MovingRight, a.JumpRequested = false, false, false
	return h, true
}
