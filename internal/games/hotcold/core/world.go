package core

import (
	platformcore "github.com/vovakirdan/hotcold/internal/core"
)

// Rect is the axis-aligned box type used throughout the engine.
type Rect = platformcore.Rect

// Grid maps (row, column) to a tile token. Rows may differ in length;
// missing cells read as empty.
type Grid [][]Tile

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the longest row.
func (g Grid) Cols() int {
	cols := 0
	for _, row := range g {
		cols = max(cols, len(row))
	}
	return cols
}

// At returns the tile at (row, col), or TileEmpty outside the grid.
func (g Grid) At(row, col int) Tile {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return TileEmpty
	}
	return g[row][col]
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Tile(nil), row...)
	}
	return out
}

// World is the immutable geometry derived from a tile grid.
// Solid cells become full chunk-sized blocks; hazard cells become pools
// covering only the lower half of the cell.
type World struct {
	grid   Grid
	rows   int
	cols   int
	solids []Rect
	pools  map[Hazard][]Rect
}

// NewWorld derives solid and hazard geometry from a grid.
// An empty grid produces an empty world, which is valid.
func NewWorld(grid Grid) *World {
	w := &World{
		grid:  grid.Clone(),
		rows:  grid.Rows(),
		cols:  grid.Cols(),
		pools: make(map[Hazard][]Rect, 3),
	}

	for row, tiles := range w.grid {
		for col, tile := range tiles {
			x := float64(col) * ChunkSize
			y := float64(row) * ChunkSize

			if h := tile.Hazard(); h != HazardNone {
				w.pools[h] = append(w.pools[h], platformcore.NewRect(x, y+ChunkSize/2, ChunkSize, ChunkSize/2))
				continue
			}
			if tile.IsSolid() {
				w.solids = append(w.solids, platformcore.NewRect(x, y, ChunkSize, ChunkSize))
			}
		}
	}

	return w
}

// Solids returns the solid block rectangles in row-major order.
func (w *World) Solids() []Rect {
	return w.solids
}

// Pools returns the pool rectangles of one hazard kind.
func (w *World) Pools(h Hazard) []Rect {
	return w.pools[h]
}

// Tile returns the token at (row, col).
func (w *World) Tile(row, col int) Tile {
	return w.grid.At(row, col)
}

// Rows returns the grid height in cells.
func (w *World) Rows() int {
	return w.rows
}

// Cols returns the grid width in cells.
func (w *World) Cols() int {
	return w.cols
}

// Bounds returns the world rectangle covered by the grid.
func (w *World) Bounds() Rect {
	return platformcore.NewRect(0, 0, float64(w.cols)*ChunkSize, float64(w.rows)*ChunkSize)
}

// CellAt returns the grid cell containing a world point.
func CellAt(x, y float64) (row, col int) {
	return floorDiv(y), floorDiv(x)
}

func floorDiv(v float64) int {
	c := int(v / ChunkSize)
	if v < 0 && float64(c)*ChunkSize != v {
		c--
	}
	return c
}
