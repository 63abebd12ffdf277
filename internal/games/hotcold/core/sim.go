package core

import (
	"fmt"

	"github.com/samber/lo"
)

// Simulation owns one level instance: the derived world, both actors and
// the level's doors and gates. It is single-threaded; one Step is one tick.
type Simulation struct {
	params Params
	world  *World
	layout Layout
	loaded bool

	actors [len(Elements)]Actor
	doors  []Door
	gates  []Gate

	tick    uint64
	outcome Outcome
}

// New creates a simulation with no level loaded.
func New(p Params) *Simulation {
	return &Simulation{params: p}
}

// Load derives the world geometry from grid and builds the entities from
// layout. It returns the derived world.
func (s *Simulation) Load(grid Grid, layout Layout) *World {
	w := NewWorld(grid)
	s.LoadWorld(w, layout)
	return w
}

// LoadWorld installs an already derived world.
func (s *Simulation) LoadWorld(w *World, layout Layout) {
	s.world = w
	s.layout = layout.Clone()
	s.loaded = true
	s.Restart()
}

// Restart discards all entity state and rebuilds it from the level layout.
func (s *Simulation) Restart() {
	if !s.loaded {
		return
	}

	for _, e := range Elements {
		s.actors[e] = newActor(e, s.layout.Spawn(e), s.params)
	}

	s.doors = make([]Door, 0, len(s.layout.Doors))
	for _, spec := range s.layout.Doors {
		s.doors = append(s.doors, newDoor(spec, s.params))
	}

	s.gates = make([]Gate, 0, len(s.layout.Gates))
	for _, spec := range s.layout.Gates {
		s.gates = append(s.gates, newGate(spec, s.params))
	}

	s.tick = 0
	s.outcome = Playing
}

// Loaded reports whether a level has been loaded.
func (s *Simulation) Loaded() bool {
	return s.loaded
}

// Params returns the tuning the simulation runs with.
func (s *Simulation) Params() Params {
	return s.params
}

// World returns the loaded world, or nil.
func (s *Simulation) World() *World {
	return s.world
}

// Layout returns a copy of the loaded layout.
func (s *Simulation) Layout() Layout {
	return s.layout.Clone()
}

// Tick returns the number of ticks simulated since the last restart.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Outcome returns the current outcome.
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// Won reports whether the level has been completed.
func (s *Simulation) Won() bool {
	return s.outcome == Won
}

// Lost reports whether both actors have died.
func (s *Simulation) Lost() bool {
	return s.outcome == Lost
}

// SetIntent sets the horizontal intent of an actor. Setting both
// directions cancels out. Dead actors ignore intent.
func (s *Simulation) SetIntent(e Element, left, right bool) error {
	a, err := s.actor(e)
	if err != nil {
		return err
	}
	if !a.Alive {
		return nil
	}
	a.MovingLeft = left
	a.MovingRight = right
	return nil
}

// RequestJump queues a one-shot jump for the next tick.
// Dead actors ignore the request.
func (s *Simulation) RequestJump(e Element) error {
	a, err := s.actor(e)
	if err != nil {
		return err
	}
	if a.Alive {
		a.JumpRequested = true
	}
	return nil
}

func (s *Simulation) actor(e Element) (*Actor, error) {
	if !s.loaded {
		return nil, ErrNoLevel
	}
	if int(e) >= len(s.actors) {
		return nil, fmt.Errorf("actor %s: %w", e, ErrNotFound)
	}
	return &s.actors[e], nil
}

// Actor returns a copy of an actor.
func (s *Simulation) Actor(e Element) (Actor, error) {
	a, err := s.actor(e)
	if err != nil {
		return Actor{}, err
	}
	return *a, nil
}

// Door returns a copy of a door.
func (s *Simulation) Door(id DoorID) (Door, error) {
	if !s.loaded {
		return Door{}, ErrNoLevel
	}
	if id < 0 || int(id) >= len(s.doors) {
		return Door{}, fmt.Errorf("door %d: %w", id, ErrNotFound)
	}
	return s.doors[id], nil
}

// Gate returns a copy of a gate.
func (s *Simulation) Gate(id GateID) (Gate, error) {
	if !s.loaded {
		return Gate{}, ErrNoLevel
	}
	if id < 0 || int(id) >= len(s.gates) {
		return Gate{}, fmt.Errorf("gate %d: %w", id, ErrNotFound)
	}
	return cloneGate(s.gates[id]), nil
}

// Doors returns copies of all doors in layout order.
func (s *Simulation) Doors() []Door {
	return append([]Door(nil), s.doors...)
}

// Gates returns copies of all gates in layout order.
func (s *Simulation) Gates() []Gate {
	return lo.Map(s.gates, func(g Gate, _ int) Gate {
		return cloneGate(g)
	})
}

func cloneGate(g Gate) Gate {
	g.Plates = append([]Rect(nil), g.Plates...)
	return g
}

// Step advances the simulation by one tick. Ticks are fixed-order:
// actor movement, closed-gate push-out, hazards, doors, gates and finally
// the win/loss check. Once the level is won or lost, Step leaves all state
// untouched until Restart. Stepping before Load does nothing.
func (s *Simulation) Step() StepResult {
	if !s.loaded || s.outcome.Terminal() {
		return StepResult{Tick: s.tick, Outcome: s.outcome}
	}

	s.tick++
	res := StepResult{Tick: s.tick}

	solids := s.world.Solids()
	for i := range s.actors {
		if s.actors[i].Alive {
			s.actors[i].move(s.params, solids)
		}
	}

	closed := s.closedGateRects()
	for i := range s.actors {
		a := &s.actors[i]
		if !a.Alive {
			continue
		}
		if len(closed) > 0 {
			a.pushOut(closed)
		}
		a.settle()
	}

	for i := range s.actors {
		if h, died := evaluateHazards(s.world, &s.actors[i]); died {
			res.Events = append(res.Events, ActorDied{Actor: s.actors[i].Element, Hazard: h})
		}
	}

	for i := range s.doors {
		d := &s.doors[i]
		state, changed := d.update(s.params, s.actors[:])
		if !changed {
			continue
		}
		if state == DoorOpen {
			res.Events = append(res.Events, DoorOpened{Door: DoorID(i), Kind: d.Kind})
		} else {
			res.Events = append(res.Events, DoorShut{Door: DoorID(i), Kind: d.Kind})
		}
	}

	for i := range s.gates {
		g := &s.gates[i]
		if !g.update(s.params, s.actors[:]) {
			continue
		}
		if g.Open {
			res.Events = append(res.Events, GateOpened{Gate: GateID(i)})
		} else {
			res.Events = append(res.Events, GateClosed{Gate: GateID(i)})
		}
	}

	switch {
	case s.AtOpenDoor(Hot) && s.AtOpenDoor(Cold):
		s.outcome = Won
		res.Events = append(res.Events, LevelWon{Tick: s.tick})
	case !s.actors[Hot].Alive && !s.actors[Cold].Alive:
		s.outcome = Lost
		res.Events = append(res.Events, LevelLost{Tick: s.tick})
	}

	res.Outcome = s.outcome
	return res
}

func (s *Simulation) closedGateRects() []Rect {
	return lo.FilterMap(s.gates, func(g Gate, _ int) (Rect, bool) {
		return g.Rect, !g.Open
	})
}

// AtOpenDoor reports whether the actor of element e is alive and inside an
// open door of its own kind.
func (s *Simulation) AtOpenDoor(e Element) bool {
	if !s.loaded || int(e) >= len(s.actors) {
		return false
	}
	a := s.actors[e]
	if !a.Alive {
		return false
	}
	return lo.ContainsBy(s.doors, func(d Door) bool {
		return d.Open && d.Kind.Admits(e) && a.Rect.Intersects(d.Rect)
	})
}

// Snapshot is a value copy of all entity state, for rendering.
type Snapshot struct {
	Tick    uint64
	Outcome Outcome
	Actors  [len(Elements)]Actor
	Doors   []Door
	Gates   []Gate
}

// Actor returns the snapshot of one actor.
func (sn Snapshot) Actor(e Element) Actor {
	return sn.Actors[e]
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Outcome: s.outcome,
		Actors:  s.actors,
		Doors:   s.Doors(),
		Gates:   s.Gates(),
	}
}
