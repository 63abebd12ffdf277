package core

// Event describes something that happened during a tick.
type Event interface {
	event()
}

// ActorDied is emitted when an actor touches a lethal pool.
type ActorDied struct {
	Actor  Element
	Hazard Hazard
}

func (ActorDied) event() {}

// DoorOpened is emitted when a door latches open.
type DoorOpened struct {
	Door DoorID
	Kind DoorKind
}

func (DoorOpened) event() {}

// DoorShut is emitted when a door has fully lowered.
type DoorShut struct {
	Door DoorID
	Kind DoorKind
}

func (DoorShut) event() {}

// GateOpened is emitted on a plate press edge.
type GateOpened struct {
	Gate GateID
}

func (GateOpened) event() {}

// GateClosed is emitted on a plate release edge.
type GateClosed struct {
	Gate GateID
}

func (GateClosed) event() {}

// LevelWon is emitted once, on the tick both actors stand in their open doors.
type LevelWon struct {
	Tick uint64
}

func (LevelWon) event() {}

// LevelLost is emitted once, on the tick the second actor dies.
type LevelLost struct {
	Tick uint64
}

func (LevelLost) event() {}

// StepResult contains what happened during one tick.
type StepResult struct {
	Tick    uint64
	Outcome Outcome
	Events  []Event
}
