package levels

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testdataLoader() *Loader {
	l := NewLoader("testdata")
	l.Logger = quietLogger()
	return l
}

func TestEmbeddedLoadAll(t *testing.T) {
	lvls, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := []string{"level1", "level2", "level3", "level4", "level5"}
	if len(lvls) != len(want) {
		t.Fatalf("expected %d embedded levels, got %d", len(want), len(lvls))
	}

	for i, lvl := range lvls {
		if lvl.ID != want[i] {
			t.Errorf("level %d: expected ID %q, got %q", i, want[i], lvl.ID)
		}
		if lvl.Rows() != CanonicalRows || lvl.Cols() != CanonicalCols {
			t.Errorf("%s: expected %dx%d grid, got %dx%d", lvl.ID, CanonicalRows, CanonicalCols, lvl.Rows(), lvl.Cols())
		}
		for _, e := range core.Elements {
			if !lvl.HasSpawn(e) {
				t.Errorf("%s: missing %s spawn", lvl.ID, e)
			}
		}
		if lvl.Name == "" || lvl.Name == lvl.ID {
			t.Errorf("%s: expected a display name, got %q", lvl.ID, lvl.Name)
		}
	}
}

func TestEmbeddedLevelsAreValid(t *testing.T) {
	lvls, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	p := core.DefaultParams()
	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			if err := Validate(lvl, p); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if report := Analyze(lvl, p); !report.OK() {
				t.Errorf("Analyze() issues: %v", report.Issues)
			}
		})
	}
}

func TestEmbeddedLevelsSpawnGrounded(t *testing.T) {
	lvls, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	for _, lvl := range lvls {
		sim := core.New(core.DefaultParams())
		lvl.Load(sim)
		for range 30 {
			sim.Step()
		}
		for _, e := range core.Elements {
			a, err := sim.Actor(e)
			if err != nil {
				t.Fatalf("%s: Actor(%s) failed: %v", lvl.ID, e, err)
			}
			if !a.Alive || !a.Grounded {
				t.Errorf("%s: %s should rest alive on the ground, got alive=%v grounded=%v",
					lvl.ID, e, a.Alive, a.Grounded)
			}
			if a.Rect.Pos() != lvl.Spawns[e] {
				t.Errorf("%s: idle %s drifted from %v to %v", lvl.ID, e, lvl.Spawns[e], a.Rect.Pos())
			}
		}
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	lvls, err := testdataLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	ids := make([]string, 0, len(lvls))
	for _, lvl := range lvls {
		ids = append(ids, lvl.ID)
	}

	// broken.yaml is skipped, notes.txt is ignored, order sorts level1 first
	want := []string{"level1", "small", "nospawn"}
	if len(ids) != len(want) {
		t.Fatalf("expected levels %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("expected levels %v, got %v", want, ids)
			break
		}
	}
}

func TestLoaderStrictRejectsInvalidLevels(t *testing.T) {
	loader := testdataLoader()
	loader.Strict = true

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	for _, lvl := range lvls {
		if lvl.ID == "nospawn" {
			t.Error("strict loader should skip a level without a cold spawn")
		}
	}

	if _, err := loader.LoadFile("nospawn.yaml"); err == nil {
		t.Error("strict LoadFile should fail for nospawn.yaml")
	}
}

func TestLoaderLoadFile(t *testing.T) {
	lvl, err := testdataLoader().LoadFile("small.yaml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.ID != "small" || lvl.Name != "Small Room" || lvl.Order != 10 {
		t.Errorf("unexpected header: %q %q %d", lvl.ID, lvl.Name, lvl.Order)
	}
	if lvl.Rows() != 5 || lvl.Cols() != 8 {
		t.Errorf("expected 5x8 grid, got %dx%d", lvl.Rows(), lvl.Cols())
	}
	if got := lvl.Grid.At(4, 2); got != core.TileLava {
		t.Errorf("tile (4, 2) = %q, expected lava", got)
	}
	if got := lvl.Grid.At(4, 5); got != core.TileWater {
		t.Errorf("tile (4, 5) = %q, expected water", got)
	}
	if lvl.Layout.ColdSpawn.X() != 96 || lvl.Layout.ColdSpawn.Y() != 32 {
		t.Errorf("cold spawn = %v, expected (96, 32)", lvl.Layout.ColdSpawn)
	}
	if len(lvl.Layout.Doors) != 2 || lvl.Layout.Doors[1].Kind != core.WaterDoor {
		t.Errorf("unexpected doors: %+v", lvl.Layout.Doors)
	}
	if len(lvl.Layout.Gates) != 1 || len(lvl.Layout.Gates[0].Plates) != 1 {
		t.Errorf("unexpected gates: %+v", lvl.Layout.Gates)
	}
	if lvl.FilePath != filepath.Join("testdata", "small.yaml") {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	_, err := testdataLoader().LoadByID("missing")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := Embedded().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 5 || ids[0] != "level1" || ids[4] != "level5" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestReadFile(t *testing.T) {
	p := filepath.Join("testdata", "override.yml")
	lvl, err := ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if lvl.ID != "level1" || lvl.Name != "Custom One" {
		t.Errorf("unexpected level %q %q", lvl.ID, lvl.Name)
	}
	if lvl.FilePath != p {
		t.Errorf("FilePath = %q, expected %q", lvl.FilePath, p)
	}

	if _, err := ReadFile(filepath.Join("testdata", "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := ReadFile(filepath.Join("testdata", "notes.txt")); err == nil {
		t.Error("expected error for an unsupported extension")
	}
}

func TestParseUnknownDoorKind(t *testing.T) {
	data := []byte("id: odd\ndoors:\n  - {kind: lava, x: 0, y: 0}\ntiles: |\n  1,1\n")
	if _, err := Parse(data, ".yaml"); err == nil {
		t.Error("expected error for an unknown door kind")
	}
}

func TestTileFromToken(t *testing.T) {
	tests := []struct {
		tok      string
		expected core.Tile
	}{
		{"0", core.TileEmpty},
		{"", core.TileEmpty},
		{"2", core.TileLava},
		{"3", core.TileWater},
		{"4", core.TileGoo},
	}
	for _, tc := range tests {
		if got := TileFromToken(tc.tok); got != tc.expected {
			t.Errorf("TileFromToken(%q) = %q, expected %q", tc.tok, got, tc.expected)
		}
	}

	for _, tok := range []string{"1", "7", "x"} {
		if !TileFromToken(tok).IsSolid() {
			t.Errorf("token %q should be solid", tok)
		}
	}
}
