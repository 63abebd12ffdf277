package core_test

import (
	"testing"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

func doorRoom(t *testing.T, hotX, coldX float64) *core.Simulation {
	t.Helper()
	return load(t, room(""), core.Layout{
		HotSpawn:  at(hotX, standY),
		ColdSpawn: at(coldX, standY),
		Doors: []core.DoorSpec{
			{Kind: core.FireDoor, Pos: at(32, standY)},
		},
	})
}

func TestDoorRampWithPresence(t *testing.T) {
	sim := doorRoom(t, 40, 256)
	p := sim.Params()

	prev := 0.0
	opened := false
	var events []core.Event
	for i := 0; i < 40; i++ {
		events = append(events, sim.Step().Events...)
		d := mustDoor(t, sim, 0)

		if !d.InRange {
			t.Fatalf("tick %d: hot actor should be in range", sim.Tick())
		}

		if opened {
			if d.Raise != prev {
				t.Fatalf("tick %d: open door raise changed %v -> %v", sim.Tick(), prev, d.Raise)
			}
			continue
		}

		if d.Raise != prev+p.DoorSpeed {
			t.Fatalf("tick %d: raise = %v, expected %v", sim.Tick(), d.Raise, prev+p.DoorSpeed)
		}
		if d.Raise >= p.DoorOpenThreshold {
			opened = true
			if !d.Open || d.State != core.DoorOpen {
				t.Fatalf("tick %d: door should latch open (state %s)", sim.Tick(), d.State)
			}
			if sim.Tick() != 21 {
				t.Errorf("door opened on tick %d, expected 21", sim.Tick())
			}
		} else if d.Open || d.State != core.DoorRaising {
			t.Fatalf("tick %d: door open=%v state=%s while raising", sim.Tick(), d.Open, d.State)
		}
		prev = d.Raise
	}

	if !opened {
		t.Fatal("door never opened")
	}
	if n := countEvents[core.DoorOpened](events); n != 1 {
		t.Errorf("DoorOpened events = %d, expected 1", n)
	}
}

func TestDoorLowersSmoothlyWhenAbandoned(t *testing.T) {
	sim := doorRoom(t, 40, 256)
	p := sim.Params()
	stepN(sim, 30)

	// Walk out of the detection zone.
	_ = sim.SetIntent(core.Hot, false, true)
	left := false
	for i := 0; i < 30; i++ {
		sim.Step()
		if d := mustDoor(t, sim, 0); !d.InRange {
			left = true
			break
		}
	}
	if !left {
		t.Fatal("actor never left the door zone")
	}
	_ = sim.SetIntent(core.Hot, false, false)

	d := mustDoor(t, sim, 0)
	if d.Open || d.State != core.DoorLowering {
		t.Fatalf("door should be lowering after the actor leaves, open=%v state=%s", d.Open, d.State)
	}

	prev := d.Raise
	var events []core.Event
	for i := 0; i < 40; i++ {
		events = append(events, sim.Step().Events...)
		d = mustDoor(t, sim, 0)
		switch {
		case prev == 0:
			if d.Raise != 0 || d.State != core.DoorClosed {
				t.Fatalf("tick %d: closed door moved (raise=%v state=%s)", sim.Tick(), d.Raise, d.State)
			}
		case d.Raise != max(0, prev-p.DoorSpeed):
			t.Fatalf("tick %d: raise = %v, expected %v", sim.Tick(), d.Raise, prev-p.DoorSpeed)
		}
		prev = d.Raise
	}

	if prev != 0 {
		t.Errorf("door did not fully lower, raise = %v", prev)
	}
	if n := countEvents[core.DoorShut](events); n != 1 {
		t.Errorf("DoorShut events = %d, expected 1", n)
	}
}

func TestDoorDetectionMargin(t *testing.T) {
	// The fire door spans x 32..64; the margin widens the zone to 22..74.
	tests := []struct {
		name    string
		hotX    float64
		inRange bool
	}{
		{"inside doorway", 40, true},
		{"right of door within margin", 70, true},
		{"touching zone edge", 74, false},
		{"beyond margin", 76, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := doorRoom(t, tc.hotX, 256)
			p := sim.Params()
			stepN(sim, 5)

			a := mustActor(t, sim, core.Hot)
			d := mustDoor(t, sim, 0)
			if a.Rect.X != tc.hotX {
				t.Fatalf("actor moved to X=%v", a.Rect.X)
			}
			if tc.hotX != 40 && a.Rect.Intersects(d.Rect) {
				t.Fatalf("actor %+v overlaps the doorway %+v", a.Rect, d.Rect)
			}
			if d.InRange != tc.inRange {
				t.Errorf("InRange = %v, expected %v", d.InRange, tc.inRange)
			}
			wantRaise := 0.0
			if tc.inRange {
				wantRaise = 5 * p.DoorSpeed
			}
			if d.Raise != wantRaise {
				t.Errorf("Raise = %v, expected %v", d.Raise, wantRaise)
			}
		})
	}
}

func TestDoorIgnoresOtherElement(t *testing.T) {
	// Cold stands at the fire door.
	sim := doorRoom(t, 256, 40)
	events := stepN(sim, 40)

	d := mustDoor(t, sim, 0)
	if d.Raise != 0 || d.Open || d.InRange {
		t.Errorf("fire door reacted to cold actor: %+v", d)
	}
	if n := countEvents[core.DoorOpened](events); n != 0 {
		t.Errorf("DoorOpened events = %d, expected 0", n)
	}
}

func TestDoorPanelRect(t *testing.T) {
	sim := doorRoom(t, 40, 256)
	stepN(sim, 4)

	d := mustDoor(t, sim, 0)
	panel := d.PanelRect()
	if panel.Y != d.Rect.Y-d.Raise || panel.X != d.Rect.X {
		t.Errorf("PanelRect() = %+v for door %+v", panel, d)
	}
	if d.Rect.Y != standY {
		t.Error("door rect must not move while raising")
	}
}

func TestDoorKind(t *testing.T) {
	if !core.FireDoor.Admits(core.Hot) || core.FireDoor.Admits(core.Cold) {
		t.Error("fire door should admit only hot")
	}
	if !core.WaterDoor.Admits(core.Cold) || core.WaterDoor.Admits(core.Hot) {
		t.Error("water door should admit only cold")
	}

	k, err := core.ParseDoorKind("water")
	if err != nil || k != core.WaterDoor {
		t.Errorf("ParseDoorKind(water) = %v, %v", k, err)
	}
	if _, err := core.ParseDoorKind("earth"); err == nil {
		t.Error("ParseDoorKind(earth) should fail")
	}
}
