// Package config provides YAML-based configuration loading for the
// hot/cold engine and its terminal front end.
package config

import (
	"fmt"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

// Config contains all tunable values of the game.
type Config struct {
	Physics Physics     `yaml:"physics"`
	Actor   ActorConfig `yaml:"actor"`
	Doors   DoorConfig  `yaml:"doors"`
	Gates   GateConfig  `yaml:"gates"`
	Play    PlayConfig  `yaml:"play"`
}

// Physics defines actor movement in world units per tick.
type Physics struct {
	Speed        float64 `yaml:"speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpBuffer   int     `yaml:"jump_buffer"` // ticks
}

// ActorConfig defines the actor bounding box.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DoorConfig defines exit doors.
type DoorConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	OpenThreshold float64 `yaml:"open_threshold"`
	DetectMargin  float64 `yaml:"detect_margin"`
}

// GateConfig defines gates and their pressure plates.
type GateConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	OpenOffset  float64 `yaml:"open_offset"`
	PlateWidth  float64 `yaml:"plate_width"`
	PlateHeight float64 `yaml:"plate_height"`
}

// PlayConfig defines terminal input behavior.
type PlayConfig struct {
	// HoldTicks is how long a horizontal key press keeps an actor moving.
	// Terminals report presses only, so key repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// Params converts the configuration into engine tuning.
func (c Config) Params() core.Params {
	return core.Params{
		Speed:        c.Physics.Speed,
		JumpImpulse:  c.Physics.JumpImpulse,
		Gravity:      c.Physics.Gravity,
		MaxFallSpeed: c.Physics.MaxFallSpeed,
		JumpBuffer:   c.Physics.JumpBuffer,

		ActorW: c.Actor.Width,
		ActorH: c.Actor.Height,

		DoorW:             c.Doors.Width,
		DoorH:             c.Doors.Height,
		DoorSpeed:         c.Doors.Speed,
		DoorOpenThreshold: c.Doors.OpenThreshold,
		DoorDetectMargin:  c.Doors.DetectMargin,

		GateW:          c.Gates.Width,
		GateH:          c.Gates.Height,
		GateOpenOffset: c.Gates.OpenOffset,
		PlateW:         c.Gates.PlateWidth,
		PlateH:         c.Gates.PlateHeight,
	}
}

// Validate checks that sizes and rates are usable.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"physics.speed", c.Physics.Speed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"actor.width", c.Actor.Width},
		{"actor.height", c.Actor.Height},
		{"doors.width", c.Doors.Width},
		{"doors.height", c.Doors.Height},
		{"doors.speed", c.Doors.Speed},
		{"doors.open_threshold", c.Doors.OpenThreshold},
		{"gates.width", c.Gates.Width},
		{"gates.height", c.Gates.Height},
		{"gates.plate_width", c.Gates.PlateWidth},
		{"gates.plate_height", c.Gates.PlateHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.value)
		}
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.JumpBuffer < 1 {
		return fmt.Errorf("config: physics.jump_buffer must be at least 1, got %d", c.Physics.JumpBuffer)
	}
	if c.Doors.DetectMargin < 0 {
		return fmt.Errorf("config: doors.detect_margin must not be negative, got %v", c.Doors.DetectMargin)
	}
	if c.Play.HoldTicks < 1 {
		return fmt.Errorf("config: play.hold_ticks must be at least 1, got %d", c.Play.HoldTicks)
	}
	return nil
}
