package formats

import (
	"testing"
)

func TestParseTiles(t *testing.T) {
	data := "1,1,1\r\n\n1,0,2,3,4\r\n  \n1\n"
	rows := ParseTiles(data, 4)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	expected := [][]string{
		{"1", "1", "1", "0"},
		{"1", "0", "2", "3"},
		{"1", "0", "0", "0"},
	}
	for r, row := range expected {
		if len(rows[r]) != len(row) {
			t.Fatalf("row %d has %d tokens, expected %d", r, len(rows[r]), len(row))
		}
		for c, tok := range row {
			if rows[r][c] != tok {
				t.Errorf("rows[%d][%d] = %q, expected %q", r, c, rows[r][c], tok)
			}
		}
	}
}

func TestParseTilesKeepsRaggedRowsWithoutWidth(t *testing.T) {
	rows := ParseTiles("1,2\n1,2,3", 0)
	if len(rows[0]) != 2 || len(rows[1]) != 3 {
		t.Errorf("unexpected row lengths %d, %d", len(rows[0]), len(rows[1]))
	}
}

func TestFormatTilesRoundTrip(t *testing.T) {
	rows := [][]string{{"1", "0"}, {"2", "3"}}
	again := ParseTiles(FormatTiles(rows), 2)
	if len(again) != 2 || again[1][0] != "2" || again[1][1] != "3" {
		t.Errorf("round trip = %v", again)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: test
order: 3
width: 4
spawns:
  hot: {x: 16, y: 0}
doors:
  - {kind: fire, x: 32, y: 0}
gates:
  - x: 0
    y: 0
    plates:
      - {x: 16, y: 16}
tiles: |
  1,1,1,1
  1,0,0
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	if lvl.ID != "test" || lvl.Name != "test" || lvl.Order != 3 {
		t.Errorf("header = %q %q %d", lvl.ID, lvl.Name, lvl.Order)
	}
	if lvl.Spawns.Hot == nil || lvl.Spawns.Hot.X != 16 {
		t.Errorf("hot spawn = %+v", lvl.Spawns.Hot)
	}
	if lvl.Spawns.Cold != nil {
		t.Error("missing cold spawn should stay nil")
	}
	if len(lvl.Doors) != 1 || lvl.Doors[0].Kind != "fire" {
		t.Errorf("doors = %+v", lvl.Doors)
	}
	if len(lvl.Gates) != 1 || len(lvl.Gates[0].Plates) != 1 {
		t.Errorf("gates = %+v", lvl.Gates)
	}
	if len(lvl.Tiles) != 2 || len(lvl.Tiles[1]) != 4 {
		t.Errorf("tiles = %v", lvl.Tiles)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [broken")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := ParseYAML([]byte("name: no id\n")); err == nil {
		t.Error("expected error for missing id")
	}
}
