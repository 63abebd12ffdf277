package hotcold

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// One tile is drawn as cellW columns by one row.
const (
	cellW     = 2
	unitsPerX = core.ChunkSize / cellW
	unitsPerY = core.ChunkSize
	hudHeight = 1
	footerH   = 1
)

// Glyphs used by the renderer.
const (
	GlyphSolid     = '█'
	GlyphPool      = '▄'
	GlyphActor     = '█'
	GlyphDead      = 'x'
	GlyphDoorPanel = '▒'
	GlyphDoorOpen  = '░'
	GlyphGate      = '▓'
	GlyphPlate     = '▁'
	GlyphPressed   = '▂'
)

var hazardColors = map[core.Hazard]platformcore.Color{
	core.HazardLava:  platformcore.ColorLava,
	core.HazardWater: platformcore.ColorWater,
	core.HazardGoo:   platformcore.ColorGoo,
}

// viewport maps world units to screen cells.
type viewport struct {
	offX, offY int
}

func (v viewport) col(x float64) int {
	return v.offX + int(math.Round(x/unitsPerX))
}

func (v viewport) row(y float64) int {
	return v.offY + int(math.Round(y/unitsPerY))
}

func (v viewport) fill(dst *platformcore.Screen, r core.Rect, ch rune, c platformcore.Color) {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	dst.FillRect(x0, y0, max(1, x1-x0), max(1, y1-y0), ch, c)
}

// MinScreenSize returns the terminal size needed to draw the loaded level.
func (g *Game) MinScreenSize() (w, h int) {
	if !g.hasLevel {
		return 0, 0
	}
	return g.level.Cols() * cellW, g.level.Rows() + hudHeight + footerH
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if !g.hasLevel {
		dst.DrawTextCentered(dst.Height()/2, "No level loaded")
		return
	}

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	v := viewport{
		offX: (dst.Width() - minW) / 2,
		offY: hudHeight,
	}
	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)
	g.renderTiles(dst, v)
	g.renderDoors(dst, v, snap)
	g.renderGates(dst, v, snap)
	g.renderActors(dst, v, snap)
	g.renderFooter(dst, hudHeight+g.level.Rows())
	g.renderOverlay(dst, snap)
}

func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawText(1, 0, g.level.Name)
	dst.DrawTextCentered(0, fmt.Sprintf("Tick %d", snap.Tick))

	status := []struct {
		label string
		e     core.Element
		color platformcore.Color
	}{
		{"HOT", core.Hot, platformcore.ColorHot},
		{"COLD", core.Cold, platformcore.ColorCold},
	}
	x := dst.Width() - 1
	for i := len(status) - 1; i >= 0; i-- {
		s := status[i]
		text := s.label + " alive"
		c := s.color
		if !snap.Actor(s.e).Alive {
			text = s.label + " dead"
			c = platformcore.ColorGray
		}
		x -= len(text) + 1
		dst.DrawTextColored(x, 0, text, c)
	}
}

func (g *Game) renderTiles(dst *platformcore.Screen, v viewport) {
	w := g.sim.World()
	for row := range w.Rows() {
		for col := range w.Cols() {
			tile := w.Tile(row, col)
			x := v.offX + col*cellW
			y := v.offY + row
			switch {
			case tile.IsSolid():
				dst.FillRect(x, y, cellW, 1, GlyphSolid, platformcore.ColorWall)
			case tile.Hazard() != core.HazardNone:
				dst.FillRect(x, y, cellW, 1, GlyphPool, hazardColors[tile.Hazard()])
			default:
				dst.FillRect(x, y, cellW, 1, ' ', platformcore.ColorAir)
			}
		}
	}
}

func (g *Game) renderDoors(dst *platformcore.Screen, v viewport, snap core.Snapshot) {
	for _, d := range snap.Doors {
		c := platformcore.ColorHot
		if d.Kind == core.WaterDoor {
			c = platformcore.ColorCold
		}

		v.fill(dst, d.Rect, GlyphDoorOpen, c)
		if d.Open {
			continue
		}

		// Only the part of the raised panel still inside the doorway shows.
		panel, ok := d.PanelRect().Intersection(d.Rect)
		if ok {
			v.fill(dst, panel, GlyphDoorPanel, c)
		}
	}
}

func (g *Game) renderGates(dst *platformcore.Screen, v viewport, snap core.Snapshot) {
	for _, gate := range snap.Gates {
		for _, p := range gate.Plates {
			glyph := GlyphPlate
			if occupiedBy(p, snap) {
				glyph = GlyphPressed
			}
			v.fill(dst, p, glyph, platformcore.ColorYellow)
		}
		v.fill(dst, gate.Rect, GlyphGate, platformcore.ColorMagenta)
	}
}

func occupiedBy(plate core.Rect, snap core.Snapshot) bool {
	for _, a := range snap.Actors {
		if a.Alive && a.Rect.Intersects(plate) {
			return true
		}
	}
	return false
}

func (g *Game) renderActors(dst *platformcore.Screen, v viewport, snap core.Snapshot) {
	colors := [...]platformcore.Color{core.Hot: platformcore.ColorHot, core.Cold: platformcore.ColorCold}
	for _, a := range snap.Actors {
		if !a.Alive {
			v.fill(dst, a.Rect, GlyphDead, platformcore.ColorGray)
			continue
		}
		v.fill(dst, a.Rect, GlyphActor, colors[a.Element])
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	dst.DrawTextCentered(y, "P1 arrows: hot   P2 WASD: cold   R restart   P pause   Esc levels   Q quit")
}

func (g *Game) renderOverlay(dst *platformcore.Screen, snap core.Snapshot) {
	var lines []string
	switch {
	case snap.Outcome == core.Won:
		lines = []string{"LEVEL COMPLETE", fmt.Sprintf("Finished in %d ticks", snap.Tick), "Enter: next level   R: replay"}
	case snap.Outcome == core.Lost:
		lines = []string{"BOTH ACTORS DIED", "R: try again   Esc: levels"}
	case g.paused:
		lines = []string{"PAUSED", "P: resume"}
	default:
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', platformcore.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l)
	}
}
