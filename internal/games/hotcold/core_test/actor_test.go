package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

func TestActorLandsWithZeroVelocity(t *testing.T) {
	sim := load(t, room(""), core.Layout{
		HotSpawn:  at(32, 40),
		ColdSpawn: at(96, standY),
	})

	landed := false
	for i := 0; i < 120; i++ {
		sim.Step()
		a := mustActor(t, sim, core.Hot)
		if a.Grounded {
			landed = true
			if a.Velocity.Y() != 0 {
				t.Fatalf("tick %d: grounded actor has vy=%v, expected 0", sim.Tick(), a.Velocity.Y())
			}
			if a.Rect.Bottom() != floorY {
				t.Fatalf("tick %d: grounded actor bottom=%v, expected %v", sim.Tick(), a.Rect.Bottom(), floorY)
			}
			if a.AirFrames != 0 {
				t.Fatalf("tick %d: grounded actor AirFrames=%d", sim.Tick(), a.AirFrames)
			}
		}
	}
	if !landed {
		t.Fatal("actor never landed")
	}
}

func TestLandingKeepsHorizontalPosition(t *testing.T) {
	// The body straddles two floor tiles with only 2 units over the left one.
	sim := load(t, room(""), core.Layout{
		HotSpawn:  at(30, 20),
		ColdSpawn: at(200, standY),
	})

	for i := 0; i < 60; i++ {
		sim.Step()
		a := mustActor(t, sim, core.Hot)
		if a.Rect.X != 30 {
			t.Fatalf("tick %d: actor moved sideways without intent, X=%v", sim.Tick(), a.Rect.X)
		}
	}
	a := mustActor(t, sim, core.Hot)
	if !a.Grounded || a.Rect.Y != standY {
		t.Errorf("actor should stand on the floor, got grounded=%v y=%v", a.Grounded, a.Rect.Y)
	}
}

func TestActorFallsForeverInEmptyWorld(t *testing.T) {
	sim := load(t, nil, core.Layout{})
	p := sim.Params()

	prevY := mustActor(t, sim, core.Hot).Rect.Y
	for i := 0; i < 100; i++ {
		sim.Step()
		a := mustActor(t, sim, core.Hot)
		if a.Rect.Y <= prevY {
			t.Fatalf("tick %d: actor did not fall (y=%v, prev=%v)", sim.Tick(), a.Rect.Y, prevY)
		}
		if a.Velocity.Y() > p.MaxFallSpeed {
			t.Fatalf("tick %d: vy=%v exceeds max fall speed", sim.Tick(), a.Velocity.Y())
		}
		if a.Grounded {
			t.Fatal("actor should never be grounded without solids")
		}
		prevY = a.Rect.Y
	}

	if vy := mustActor(t, sim, core.Hot).Velocity.Y(); vy != p.MaxFallSpeed {
		t.Errorf("vy = %v, expected terminal velocity %v", vy, p.MaxFallSpeed)
	}
	if sim.Outcome() != core.Playing {
		t.Errorf("Outcome() = %s, expected playing", sim.Outcome())
	}
}

func TestActorHorizontalIntent(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		dx          float64
	}{
		{"right", false, true, 3},
		{"left", true, false, -3},
		{"both cancel", true, true, 0},
		{"none", false, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := load(t, room(""), core.Layout{
				HotSpawn:  at(96, standY),
				ColdSpawn: at(200, standY),
			})
			if err := sim.SetIntent(core.Hot, tc.left, tc.right); err != nil {
				t.Fatalf("SetIntent() error: %v", err)
			}
			sim.Step()
			a := mustActor(t, sim, core.Hot)
			if got := a.Rect.X - 96; got != tc.dx {
				t.Errorf("dx = %v, expected %v", got, tc.dx)
			}
		})
	}
}

func TestActorBlockedByWall(t *testing.T) {
	sim := load(t, room(""), core.Layout{
		HotSpawn:  at(40, standY),
		ColdSpawn: at(200, standY),
	})
	_ = sim.SetIntent(core.Hot, true, false)
	stepN(sim, 30)

	a := mustActor(t, sim, core.Hot)
	if a.Rect.X != 16 {
		t.Errorf("actor X = %v, expected flush with the wall at 16", a.Rect.X)
	}
	if !a.Grounded {
		t.Error("actor should stay grounded while walking into a wall")
	}
}

func TestJumpIsOneShot(t *testing.T) {
	sim := load(t, room(""), core.Layout{
		HotSpawn:  at(96, standY),
		ColdSpawn: at(200, standY),
	})
	p := sim.Params()
	sim.Step()

	if err := sim.RequestJump(core.Hot); err != nil {
		t.Fatalf("RequestJump() error: %v", err)
	}
	sim.Step()

	a := mustActor(t, sim, core.Hot)
	if want := p.JumpImpulse + p.Gravity; a.Velocity.Y() != want {
		t.Errorf("vy after jump = %v, expected %v", a.Velocity.Y(), want)
	}
	if a.JumpRequested {
		t.Error("jump request should be consumed")
	}
	if a.Rect.Y >= standY {
		t.Error("actor should have moved up")
	}

	if a.AirFrames != 1 {
		t.Errorf("AirFrames after jump = %d, expected 1", a.AirFrames)
	}

	// Without a new request the impulse is not applied again.
	sim.Step()
	a = mustActor(t, sim, core.Hot)
	if want := p.JumpImpulse + 2*p.Gravity; math.Abs(a.Velocity.Y()-want) > 1e-9 {
		t.Errorf("vy = %v, expected %v (no repeat without request)", a.Velocity.Y(), want)
	}

	// A fresh request while the airborne counter is still inside the
	// buffer fires again.
	_ = sim.RequestJump(core.Hot)
	sim.Step()
	a = mustActor(t, sim, core.Hot)
	if a.AirFrames >= p.JumpBuffer {
		t.Fatalf("AirFrames = %d, expected below the buffer of %d", a.AirFrames, p.JumpBuffer)
	}
	if want := p.JumpImpulse + p.Gravity; math.Abs(a.Velocity.Y()-want) > 1e-9 {
		t.Errorf("vy = %v, expected %v (jump inside buffer)", a.Velocity.Y(), want)
	}
}

func TestJumpBufferAllowsLateJump(t *testing.T) {
	tests := []struct {
		name      string
		fallTicks int
		fires     bool
	}{
		{"within buffer", 2, true},
		{"after buffer", 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := load(t, room(""), core.Layout{
				HotSpawn:  at(96, 60),
				ColdSpawn: at(200, standY),
			})
			p := sim.Params()
			stepN(sim, tc.fallTicks)

			_ = sim.RequestJump(core.Hot)
			sim.Step()
			a := mustActor(t, sim, core.Hot)
			fired := a.Velocity.Y() == p.JumpImpulse+p.Gravity
			if fired != tc.fires {
				t.Errorf("jump fired = %v, expected %v (vy=%v)", fired, tc.fires, a.Velocity.Y())
			}
		})
	}
}

// TestNoPenetration drives both actors with pseudo-random input through a
// room with platforms and checks that no living actor ends a tick inside
// a solid block.
func TestNoPenetration(t *testing.T) {
	grid := parseGrid(
		"########################",
		"#......................#",
		"#......................#",
		"#......................#",
		"#......................#",
		"#......................#",
		"#....#####.............#",
		"#......................#",
		"#......................#",
		"#......................#",
		"#.............#####....#",
		"#......................#",
		"#......................#",
		"#..........#...........#",
		"########################",
	)
	sim := load(t, grid, core.Layout{
		HotSpawn:  at(32, 192),
		ColdSpawn: at(320, 192),
	})
	solids := sim.World().Solids()
	rng := rand.New(rand.NewSource(42))

	const eps = 1e-9
	for tick := 0; tick < 5000; tick++ {
		if tick%12 == 0 {
			for _, e := range core.Elements {
				dir := rng.Intn(3)
				_ = sim.SetIntent(e, dir == 0, dir == 1)
			}
		}
		for _, e := range core.Elements {
			if rng.Intn(10) == 0 {
				_ = sim.RequestJump(e)
			}
		}

		sim.Step()

		for _, e := range core.Elements {
			a := mustActor(t, sim, e)
			for _, s := range solids {
				overlap, ok := a.Rect.Intersection(s)
				if ok && overlap.W > eps && overlap.H > eps {
					t.Fatalf("tick %d: %s actor %+v penetrates block %+v", sim.Tick(), e, a.Rect, s)
				}
			}
		}
	}
}
