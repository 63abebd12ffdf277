package levels

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// Canonical grid dimensions of a level.
const (
	CanonicalRows = 30
	CanonicalCols = 40
)

// previewRows is how many bottom rows the analyzer renders.
const previewRows = 6

// TileCount is the number of cells holding one token.
type TileCount struct {
	Token       string
	Description string
	Count       int
}

// SpawnCheck describes the cells around an actor's spawn point.
type SpawnCheck struct {
	Element  core.Element
	Present  bool
	Pos      mgl64.Vec2
	Body     core.Tile // tile at the body's center
	Ground   core.Tile // tile directly below the feet
	Safe     bool      // body is clear of solids and lethal pools
	Grounded bool      // spawn stands on a solid tile
}

// Report is the result of analyzing a level.
type Report struct {
	ID      string
	Name    string
	Rows    int
	Cols    int
	Counts  []TileCount
	Spawns  []SpawnCheck
	Preview []string
	Issues  []string
}

// OK reports whether the analysis found no issues.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Analyze inspects a level: tile statistics, spawn safety, a legend
// preview of the bottom rows and a list of issues.
func Analyze(l Level, p core.Params) Report {
	r := Report{
		ID:   l.ID,
		Name: l.Name,
		Rows: l.Rows(),
		Cols: l.Cols(),
	}

	counts := make(map[string]int)
	for _, row := range l.Tokens {
		for _, tok := range row {
			if tok == "" {
				tok = TokenEmpty
			}
			counts[tok]++
		}
	}
	for tok, n := range counts {
		r.Counts = append(r.Counts, TileCount{Token: tok, Description: Describe(tok), Count: n})
	}
	sort.Slice(r.Counts, func(i, j int) bool {
		return r.Counts[i].Token < r.Counts[j].Token
	})

	w := l.World()
	for _, e := range core.Elements {
		r.Spawns = append(r.Spawns, checkSpawn(l, w, e, p))
	}

	start := max(0, r.Rows-previewRows)
	for row := start; row < r.Rows; row++ {
		line := make([]rune, r.Cols)
		for col := range line {
			line[col] = Glyph(l.Grid.At(row, col))
		}
		r.Preview = append(r.Preview, string(line))
	}

	if r.Rows != CanonicalRows {
		r.Issues = append(r.Issues, fmt.Sprintf("expected %d rows, found %d", CanonicalRows, r.Rows))
	}
	if r.Cols != CanonicalCols {
		r.Issues = append(r.Issues, fmt.Sprintf("expected %d columns, found %d", CanonicalCols, r.Cols))
	}
	if counts[TokenLava] == 0 {
		r.Issues = append(r.Issues, "no lava tiles")
	}
	if counts[TokenWater] == 0 {
		r.Issues = append(r.Issues, "no water tiles")
	}
	for _, s := range r.Spawns {
		if s.Present && !s.Grounded {
			r.Issues = append(r.Issues, fmt.Sprintf("%s spawn is not standing on solid ground", s.Element))
		}
	}
	for _, problem := range Problems(l, p) {
		r.Issues = append(r.Issues, problem.Error())
	}

	return r
}

func checkSpawn(l Level, w *core.World, e core.Element, p core.Params) SpawnCheck {
	pos, ok := l.Spawns[e]
	check := SpawnCheck{Element: e, Present: ok, Pos: pos}
	if !ok {
		return check
	}

	bodyRow, bodyCol := core.CellAt(pos.X()+p.ActorW/2, pos.Y()+p.ActorH/2)
	groundRow, groundCol := core.CellAt(pos.X()+p.ActorW/2, pos.Y()+p.ActorH)
	check.Body = w.Tile(bodyRow, bodyCol)
	check.Ground = w.Tile(groundRow, groundCol)
	check.Grounded = check.Ground.IsSolid()

	check.Safe = len(spawnProblems(w, e, pos, p)) == 0
	return check
}
