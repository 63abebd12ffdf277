package hotcold

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// LogEvent writes one engine event as a structured log line.
func LogEvent(logger *log.Logger, level string, ev core.Event) {
	switch e := ev.(type) {
	case core.ActorDied:
		logger.Info("actor died", "level", level, "actor", e.Actor.String(), "hazard", e.Hazard.String())
	case core.DoorOpened:
		logger.Debug("door opened", "level", level, "door", int(e.Door), "kind", e.Kind.String())
	case core.DoorShut:
		logger.Debug("door closed", "level", level, "door", int(e.Door), "kind", e.Kind.String())
	case core.GateOpened:
		logger.Debug("gate opened", "level", level, "gate", int(e.Gate))
	case core.GateClosed:
		logger.Debug("gate closed", "level", level, "gate", int(e.Gate))
	case core.LevelWon:
		logger.Info("level won", "level", level, "tick", e.Tick)
	case core.LevelLost:
		logger.Info("level lost", "level", level, "tick", e.Tick)
	}
}

// Describe returns a short human-readable message for an event.
func Describe(ev core.Event) string {
	switch e := ev.(type) {
	case core.ActorDied:
		return e.Actor.String() + " fell into " + e.Hazard.String()
	case core.DoorOpened:
		return e.Kind.String() + " door open"
	case core.DoorShut:
		return e.Kind.String() + " door closed"
	case core.GateOpened:
		return "gate opened"
	case core.GateClosed:
		return "gate closed"
	case core.LevelWon:
		return "level complete"
	case core.LevelLost:
		return "both actors died"
	default:
		return ""
	}
}
