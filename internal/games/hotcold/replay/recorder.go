package replay

import "github.com/vovakirdan/hotcold/internal/games/hotcold/core"

// Recorder builds a script from live input. Only changes of the
// horizontal intent and jump presses are written. Holding both directions
// records as none, so callers that want bit-identical replays should not
// set both at once.
type Recorder struct {
	level  string
	moves  [len(core.Elements)]string
	events []Event
}

// NewRecorder starts an empty recording for a level.
func NewRecorder(level string) *Recorder {
	r := &Recorder{level: level}
	r.Reset()
	return r
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.events = nil
	for i := range r.moves {
		r.moves[i] = MoveNone
	}
}

// Record notes the input given to actor e right before tick is simulated.
func (r *Recorder) Record(tick uint64, e core.Element, left, right, jump bool) {
	if int(e) >= len(r.moves) {
		return
	}

	move := MoveNone
	switch {
	case left && !right:
		move = MoveLeft
	case right && !left:
		move = MoveRight
	}

	ev := Event{Tick: tick, Actor: e.String(), Jump: jump}
	if move != r.moves[e] {
		ev.Move = move
		r.moves[e] = move
	}
	if ev.Move != "" || ev.Jump {
		r.events = append(r.events, ev)
	}
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Script returns the recording as a script limited to maxTicks.
func (r *Recorder) Script(maxTicks uint64) Script {
	return Script{
		Level:    r.level,
		MaxTicks: maxTicks,
		Events:   append([]Event(nil), r.events...),
	}
}
