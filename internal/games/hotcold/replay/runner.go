package replay

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
)

// TimedEvent is an engine event together with the tick it happened on.
type TimedEvent struct {
	Tick  uint64
	Event core.Event
}

// ActorResult is the final state of one actor.
type ActorResult struct {
	Element core.Element
	Rect    core.Rect
	Alive   bool
}

// Result is the outcome of running a script.
type Result struct {
	Level       string
	Outcome     core.Outcome
	Ticks       uint64
	Actors      []ActorResult
	Fingerprint uint64
	Events      []TimedEvent
}

// Actor returns the final state of the actor of element e.
func (r Result) Actor(e core.Element) (ActorResult, bool) {
	return lo.Find(r.Actors, func(a ActorResult) bool {
		return a.Element == e
	})
}

// Run restarts sim and plays the script until the level is won or lost
// or the tick limit is reached.
func Run(sim *core.Simulation, s Script) (Result, error) {
	if !sim.Loaded() {
		return Result{}, core.ErrNoLevel
	}
	sim.Restart()

	res := Result{Level: s.Level}
	limit := s.Limit()
	next := 0

	for sim.Tick() < limit && !sim.Outcome().Terminal() {
		tick := sim.Tick() + 1
		for next < len(s.Events) && s.Events[next].Tick <= tick {
			if err := apply(sim, s.Events[next]); err != nil {
				return Result{}, fmt.Errorf("event at tick %d: %w", s.Events[next].Tick, err)
			}
			next++
		}

		step := sim.Step()
		for _, ev := range step.Events {
			res.Events = append(res.Events, TimedEvent{Tick: step.Tick, Event: ev})
		}
	}

	res.Outcome = sim.Outcome()
	res.Ticks = sim.Tick()
	res.Fingerprint = sim.Fingerprint()
	for _, e := range core.Elements {
		a, err := sim.Actor(e)
		if err != nil {
			return Result{}, err
		}
		res.Actors = append(res.Actors, ActorResult{Element: e, Rect: a.Rect, Alive: a.Alive})
	}
	return res, nil
}

// RunLevel loads a level into a fresh simulation and runs the script.
func RunLevel(l levels.Level, p core.Params, s Script) (Result, error) {
	sim := core.New(p)
	l.Load(sim)
	return Run(sim, s)
}

func apply(sim *core.Simulation, ev Event) error {
	e, err := core.ParseElement(ev.Actor)
	if err != nil {
		return err
	}

	switch ev.Move {
	case MoveNone:
		err = sim.SetIntent(e, false, false)
	case MoveLeft:
		err = sim.SetIntent(e, true, false)
	case MoveRight:
		err = sim.SetIntent(e, false, true)
	}
	if err != nil {
		return err
	}

	if ev.Jump {
		return sim.RequestJump(e)
	}
	return nil
}
