package config

import (
	_ "embed"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

//go:embed defaults/hotcold.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration. It matches the
// embedded defaults/hotcold.yaml.
func DefaultConfig() Config {
	p := core.DefaultParams()
	return Config{
		Physics: Physics{
			Speed:        p.Speed,
			JumpImpulse:  p.JumpImpulse,
			Gravity:      p.Gravity,
			MaxFallSpeed: p.MaxFallSpeed,
			JumpBuffer:   p.JumpBuffer,
		},
		Actor: ActorConfig{
			Width:  p.ActorW,
			Height: p.ActorH,
		},
		Doors: DoorConfig{
			Width:         p.DoorW,
			Height:        p.DoorH,
			Speed:         p.DoorSpeed,
			OpenThreshold: p.DoorOpenThreshold,
			DetectMargin:  p.DoorDetectMargin,
		},
		Gates: GateConfig{
			Width:       p.GateW,
			Height:      p.GateH,
			OpenOffset:  p.GateOpenOffset,
			PlateWidth:  p.PlateW,
			PlateHeight: p.PlateH,
		},
		Play: PlayConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
