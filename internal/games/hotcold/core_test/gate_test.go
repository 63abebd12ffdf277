package core_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// gateRoom has one gate standing on the floor at x=240 with plates at
// x=96 and x=160.
func gateRoom(t *testing.T, hotX, coldX float64) *core.Simulation {
	t.Helper()
	return load(t, room(""), core.Layout{
		HotSpawn:  at(hotX, standY),
		ColdSpawn: at(coldX, standY),
		Gates: []core.GateSpec{
			{
				Pos:    at(240, floorY-96),
				Plates: []mgl64.Vec2{at(96, floorY-16), at(160, floorY-16)},
			},
		},
	})
}

func TestGateSnapsOnceWhilePressed(t *testing.T) {
	sim := gateRoom(t, 100, 32)
	p := sim.Params()
	closedY := mustGate(t, sim, 0).Rect.Y

	events := stepN(sim, 30)
	g := mustGate(t, sim, 0)
	if !g.Open || !g.Pressed {
		t.Fatalf("gate should be open while a plate is pressed: %+v", g)
	}
	if g.Rect.Y != closedY-p.GateOpenOffset {
		t.Errorf("open gate Y = %v, expected %v", g.Rect.Y, closedY-p.GateOpenOffset)
	}
	if n := countEvents[core.GateOpened](events); n != 1 {
		t.Errorf("GateOpened events = %d, expected 1", n)
	}

	// Step off the plate.
	_ = sim.SetIntent(core.Hot, true, false)
	events = stepN(sim, 10)
	_ = sim.SetIntent(core.Hot, false, false)
	events = append(events, stepN(sim, 10)...)

	g = mustGate(t, sim, 0)
	if g.Open || g.Pressed {
		t.Fatalf("gate should close after release: %+v", g)
	}
	if g.Rect.Y != closedY {
		t.Errorf("closed gate Y = %v, expected %v", g.Rect.Y, closedY)
	}
	if n := countEvents[core.GateClosed](events); n != 1 {
		t.Errorf("GateClosed events = %d, expected 1", n)
	}
}

func TestGateBothPlatesOneTransition(t *testing.T) {
	sim := gateRoom(t, 100, 164)

	res := sim.Step()
	if n := countEvents[core.GateOpened](res.Events); n != 1 {
		t.Fatalf("GateOpened events = %d, expected 1", n)
	}
	g := mustGate(t, sim, 0)
	if !g.PlatePressed(0, []core.Actor{mustActor(t, sim, core.Hot)}) {
		t.Error("plate 0 should be pressed by hot")
	}
	if !g.PlatePressed(1, []core.Actor{mustActor(t, sim, core.Cold)}) {
		t.Error("plate 1 should be pressed by cold")
	}

	if n := countEvents[core.GateOpened](stepN(sim, 20)); n != 0 {
		t.Errorf("holding both plates produced %d more transitions", n)
	}
}

func TestGateAnySinglePlateOpens(t *testing.T) {
	// Only cold, on the second plate.
	sim := gateRoom(t, 32, 164)
	sim.Step()
	if g := mustGate(t, sim, 0); !g.Open {
		t.Error("a single plate pressed by either actor should open the gate")
	}
}

func TestClosedGateBlocksActor(t *testing.T) {
	sim := gateRoom(t, 200, 32)
	_ = sim.SetIntent(core.Hot, false, true)

	for i := 0; i < 40; i++ {
		sim.Step()
		a := mustActor(t, sim, core.Hot)
		g := mustGate(t, sim, 0)
		if a.Rect.Intersects(g.Rect) {
			t.Fatalf("tick %d: actor %+v inside closed gate %+v", sim.Tick(), a.Rect, g.Rect)
		}
	}
	if x := mustActor(t, sim, core.Hot).Rect.X; x != 224 {
		t.Errorf("actor X = %v, expected flush against the gate at 224", x)
	}
}

func TestOpenGateLetsActorPass(t *testing.T) {
	// Cold holds the plate open while hot walks through.
	sim := gateRoom(t, 200, 100)
	_ = sim.SetIntent(core.Hot, false, true)
	stepN(sim, 40)

	if x := mustActor(t, sim, core.Hot).Rect.X; x <= 240 {
		t.Errorf("actor X = %v, expected to pass the open gate", x)
	}
}
