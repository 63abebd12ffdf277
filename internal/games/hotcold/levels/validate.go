package levels

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation codes.
const (
	CodeEmptyGrid     = "EMPTY_GRID"
	CodeMissingSpawn  = "MISSING_SPAWN"
	CodeMissingDoor   = "MISSING_DOOR"
	CodeSpawnInSolid  = "SPAWN_IN_SOLID"
	CodeSpawnInHazard = "SPAWN_IN_HAZARD"
)

// Validate performs validation of a level against the engine tuning and
// returns the first problem found.
// Checks:
//   - The grid has at least one solid block
//   - Both spawns are present
//   - There is a fire door and a water door
//   - No spawn overlaps a solid block or a pool lethal to its actor
func Validate(l Level, p core.Params) error {
	if problems := Problems(l, p); len(problems) > 0 {
		return problems[0]
	}
	return nil
}

// Problems returns every validation problem of a level.
func Problems(l Level, p core.Params) []ValidationError {
	var problems []ValidationError

	w := l.World()
	if len(w.Solids()) == 0 {
		problems = append(problems, ValidationError{
			Code:    CodeEmptyGrid,
			Message: fmt.Sprintf("level %s has no solid blocks", l.ID),
		})
	}

	for _, e := range core.Elements {
		pos, ok := l.Spawns[e]
		if !ok {
			problems = append(problems, ValidationError{
				Code:    CodeMissingSpawn,
				Message: fmt.Sprintf("level %s has no %s spawn", l.ID, e),
			})
			continue
		}

		problems = append(problems, spawnProblems(w, e, pos, p)...)
	}

	for _, kind := range []core.DoorKind{core.FireDoor, core.WaterDoor} {
		has := lo.ContainsBy(l.Layout.Doors, func(d core.DoorSpec) bool {
			return d.Kind == kind
		})
		if !has {
			problems = append(problems, ValidationError{
				Code:    CodeMissingDoor,
				Message: fmt.Sprintf("level %s has no %s door", l.ID, kind),
			})
		}
	}

	return problems
}

// spawnProblems checks an actor's body at its spawn point.
func spawnProblems(w *core.World, e core.Element, pos mgl64.Vec2, p core.Params) []ValidationError {
	var problems []ValidationError
	body := platformcore.RectAt(pos, p.ActorW, p.ActorH)
	if lo.ContainsBy(w.Solids(), body.Intersects) {
		problems = append(problems, ValidationError{
			Code:    CodeSpawnInSolid,
			Message: fmt.Sprintf("%s spawn at (%v, %v) overlaps a solid block", e, pos.X(), pos.Y()),
		})
	}
	if h := core.LethalHazard(w, e, body); h != core.HazardNone {
		problems = append(problems, ValidationError{
			Code:    CodeSpawnInHazard,
			Message: fmt.Sprintf("%s spawn at (%v, %v) overlaps %s", e, pos.X(), pos.Y(), h),
		})
	}
	return problems
}
