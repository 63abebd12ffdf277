// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Order  int        `yaml:"order"`
	Width  int        `yaml:"width,omitempty"`
	Spawns YAMLSpawns `yaml:"spawns"`
	Doors  []YAMLDoor `yaml:"doors"`
	Gates  []YAMLGate `yaml:"gates,omitempty"`
	Tiles  string     `yaml:"tiles"`
}

// YAMLPoint is a position in world units.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLSpawns holds the actor spawn points. Missing spawns stay nil.
type YAMLSpawns struct {
	Hot  *YAMLPoint `yaml:"hot"`
	Cold *YAMLPoint `yaml:"cold"`
}

// YAMLDoor places an exit door.
type YAMLDoor struct {
	Kind string  `yaml:"kind"` // fire or water
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// YAMLGate places a gate and its pressure plates.
type YAMLGate struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Plates []YAMLPoint `yaml:"plates"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID     string
	Name   string
	Order  int
	Tiles  [][]string
	Spawns YAMLSpawns
	Doors  []YAMLDoor
	Gates  []YAMLGate
}

// DefaultWidth is the canonical number of columns in a tile grid.
const DefaultWidth = 40

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	width := yl.Width
	if width <= 0 {
		width = DefaultWidth
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:     yl.ID,
		Name:   name,
		Order:  yl.Order,
		Tiles:  ParseTiles(yl.Tiles, width),
		Spawns: yl.Spawns,
		Doors:  yl.Doors,
		Gates:  yl.Gates,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
