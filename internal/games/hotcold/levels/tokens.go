package levels

import "github.com/vovakirdan/hotcold/internal/games/hotcold/core"

// Numeric tile tokens used in level files.
const (
	TokenEmpty = "0"
	TokenSolid = "1"
	TokenLava  = "2"
	TokenWater = "3"
	TokenGoo   = "4"
)

// TileFromToken maps a file token onto the engine's tile token.
// Unknown non-empty tokens are solid.
func TileFromToken(tok string) core.Tile {
	switch tok {
	case "", TokenEmpty:
		return core.TileEmpty
	case TokenLava:
		return core.TileLava
	case TokenWater:
		return core.TileWater
	case TokenGoo:
		return core.TileGoo
	default:
		return core.Tile(tok)
	}
}

// GridFromTokens converts token rows into an engine grid.
func GridFromTokens(rows [][]string) core.Grid {
	grid := make(core.Grid, len(rows))
	for r, row := range rows {
		grid[r] = make([]core.Tile, len(row))
		for c, tok := range row {
			grid[r][c] = TileFromToken(tok)
		}
	}
	return grid
}

// Describe returns a human-readable name for a file token.
func Describe(tok string) string {
	switch tok {
	case "", TokenEmpty:
		return "Empty space"
	case TokenSolid:
		return "Solid block"
	case TokenLava:
		return "Lava (kills cold)"
	case TokenWater:
		return "Water (kills hot)"
	case TokenGoo:
		return "Goo (kills both)"
	default:
		return "Solid block (custom)"
	}
}

// Glyph returns the single-character legend symbol for a tile.
func Glyph(t core.Tile) rune {
	switch t {
	case core.TileEmpty:
		return '.'
	case core.TileLava:
		return 'L'
	case core.TileWater:
		return 'W'
	case core.TileGoo:
		return 'G'
	default:
		return '#'
	}
}
