package core

import (
	"fmt"
	"math"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a hash of the complete simulation state.
// Two simulations with equal fingerprints are in the same state, bit for
// bit, so replays and restarts can be compared cheaply.
func (s *Simulation) Fingerprint() uint64 {
	h := xxh3.New()

	fmt.Fprintf(h, "T:%d;O:%d;", s.tick, s.outcome)

	fmt.Fprintf(h, "A:")
	for _, a := range s.actors {
		fmt.Fprintf(h, "%d:%s:%x:%x:%t:%t:%t:%t:%t:%d,",
			a.Element, rectBits(a.Rect),
			math.Float64bits(a.Velocity.X()), math.Float64bits(a.Velocity.Y()),
			a.Grounded, a.Alive, a.JumpRequested, a.MovingLeft, a.MovingRight, a.AirFrames)
	}

	fmt.Fprintf(h, ";D:")
	for _, d := range s.doors {
		fmt.Fprintf(h, "%d:%s:%x:%t:%t:%d,",
			d.Kind, rectBits(d.Rect), math.Float64bits(d.Raise), d.Open, d.InRange, d.State)
	}

	fmt.Fprintf(h, ";G:")
	for _, g := range s.gates {
		fmt.Fprintf(h, "%s:%t:%t[", rectBits(g.Rect), g.Pressed, g.Open)
		for _, p := range g.Plates {
			fmt.Fprintf(h, "%s,", rectBits(p))
		}
		fmt.Fprintf(h, "]")
	}

	return h.Sum64()
}

func rectBits(r Rect) string {
	return fmt.Sprintf("%x/%x/%x/%x",
		math.Float64bits(r.X), math.Float64bits(r.Y),
		math.Float64bits(r.W), math.Float64bits(r.H))
}
