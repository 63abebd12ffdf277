// Package levels loads hot/cold levels: YAML descriptors carrying a CSV
// tile grid and the static entity layout. This package depends on core
// but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels/formats"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrLevelNotFound is returned when a level id is unknown.
var ErrLevelNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Order    int
	Tokens   [][]string // raw tile tokens as written in the file
	Grid     core.Grid
	Spawns   map[core.Element]mgl64.Vec2
	Layout   core.Layout
	FilePath string
}

// Rows returns the grid height in cells.
func (l Level) Rows() int {
	return l.Grid.Rows()
}

// Cols returns the grid width in cells.
func (l Level) Cols() int {
	return l.Grid.Cols()
}

// HasSpawn reports whether the level defines a spawn for e.
func (l Level) HasSpawn(e core.Element) bool {
	_, ok := l.Spawns[e]
	return ok
}

// World derives the level geometry.
func (l Level) World() *core.World {
	return core.NewWorld(l.Grid)
}

// Load installs the level into a simulation and returns its world.
func (l Level) Load(sim *core.Simulation) *core.World {
	return sim.Load(l.Grid, l.Layout)
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string // shown in log and error messages
	Strict bool   // reject levels that fail validation
	Params core.Params
	Logger *log.Logger
}

// NewLoader creates a level loader over a directory.
func NewLoader(root string) *Loader {
	return &Loader{
		FS:     os.DirFS(root),
		Root:   root,
		Params: core.DefaultParams(),
	}
}

// Embedded returns a loader over the built-in level pack.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded data: %v", err))
	}
	return &Loader{
		FS:     sub,
		Root:   "embedded",
		Params: core.DefaultParams(),
	}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning. Levels are sorted by order,
// then ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			l.logger().Warn("skipping level", "root", l.Root, "file", p, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, nil
}

// LoadFile loads a single level file relative to the loader's root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = path.Join(l.Root, p)

	if l.Strict {
		if err := Validate(level, l.Params); err != nil {
			return Level{}, fmt.Errorf("validating file %s: %w", p, err)
		}
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in play order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(levels, func(lvl Level, _ int) string { return lvl.ID }), nil
}

// ReadFile loads a level file from disk.
func ReadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := Parse(data, filepath.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// Parse decodes level data in the format implied by ext.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	return fromFormat(parsed)
}

func fromFormat(parsed formats.Level) (Level, error) {
	level := Level{
		ID:     parsed.ID,
		Name:   parsed.Name,
		Order:  parsed.Order,
		Tokens: parsed.Tiles,
		Grid:   GridFromTokens(parsed.Tiles),
		Spawns: make(map[core.Element]mgl64.Vec2, 2),
	}

	if s := parsed.Spawns.Hot; s != nil {
		level.Spawns[core.Hot] = mgl64.Vec2{s.X, s.Y}
	}
	if s := parsed.Spawns.Cold; s != nil {
		level.Spawns[core.Cold] = mgl64.Vec2{s.X, s.Y}
	}
	level.Layout.HotSpawn = level.Spawns[core.Hot]
	level.Layout.ColdSpawn = level.Spawns[core.Cold]

	for i, d := range parsed.Doors {
		kind, err := core.ParseDoorKind(d.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("door %d: %w", i, err)
		}
		level.Layout.Doors = append(level.Layout.Doors, core.DoorSpec{
			Kind: kind,
			Pos:  mgl64.Vec2{d.X, d.Y},
		})
	}

	for _, g := range parsed.Gates {
		level.Layout.Gates = append(level.Layout.Gates, core.GateSpec{
			Pos: mgl64.Vec2{g.X, g.Y},
			Plates: lo.Map(g.Plates, func(p formats.YAMLPoint, _ int) mgl64.Vec2 {
				return mgl64.Vec2{p.X, p.Y}
			}),
		})
	}

	return level, nil
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return lo.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
