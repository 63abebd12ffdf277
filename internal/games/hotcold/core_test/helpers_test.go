package core_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// floorY is the top of the floor in rooms built by room().
const floorY = 9 * core.ChunkSize

// standY is the Y of an actor standing on the floor of room().
const standY = floorY - 32

// parseGrid builds a grid from a picture: '#' solid, 'L' lava, 'W' water,
// 'G' goo, anything else empty.
func parseGrid(rows ...string) core.Grid {
	g := make(core.Grid, len(rows))
	for r, line := range rows {
		g[r] = make([]core.Tile, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				g[r][c] = "wall"
			case 'L':
				g[r][c] = core.TileLava
			case 'W':
				g[r][c] = core.TileWater
			case 'G':
				g[r][c] = core.TileGoo
			default:
				g[r][c] = core.TileEmpty
			}
		}
	}
	return g
}

// room returns a 20x10 walled room. pools is the picture of row 8, the row
// directly above the floor.
func room(pools string) core.Grid {
	if pools == "" {
		pools = "#..................#"
	}
	return parseGrid(
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		pools,
		"####################",
	)
}

func at(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

func load(t *testing.T, grid core.Grid, layout core.Layout) *core.Simulation {
	t.Helper()
	sim := core.New(core.DefaultParams())
	sim.Load(grid, layout)
	return sim
}

func mustActor(t *testing.T, sim *core.Simulation, e core.Element) core.Actor {
	t.Helper()
	a, err := sim.Actor(e)
	if err != nil {
		t.Fatalf("Actor(%s) error: %v", e, err)
	}
	return a
}

func mustDoor(t *testing.T, sim *core.Simulation, id core.DoorID) core.Door {
	t.Helper()
	d, err := sim.Door(id)
	if err != nil {
		t.Fatalf("Door(%d) error: %v", id, err)
	}
	return d
}

func mustGate(t *testing.T, sim *core.Simulation, id core.GateID) core.Gate {
	t.Helper()
	g, err := sim.Gate(id)
	if err != nil {
		t.Fatalf("Gate(%d) error: %v", id, err)
	}
	return g
}

// stepN runs n ticks and collects every event.
func stepN(sim *core.Simulation, n int) []core.Event {
	var events []core.Event
	for i := 0; i < n; i++ {
		events = append(events, sim.Step().Events...)
	}
	return events
}

// countEvents counts events of the same dynamic type as sample.
func countEvents[T core.Event](events []core.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}
