package levels

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/samber/lo"
)

// Catalog is the ordered set of playable levels.
type Catalog struct {
	levels *orderedmap.OrderedMap[string, Level]
}

// NewCatalog builds a catalog in play order. When two levels share an
// ID the later one wins.
func NewCatalog(levels ...Level) *Catalog {
	byID := make(map[string]Level, len(levels))
	for _, l := range levels {
		byID[l.ID] = l
	}
	sorted := lo.Values(byID)
	sortLevels(sorted)

	c := &Catalog{levels: orderedmap.NewOrderedMap[string, Level]()}
	for _, l := range sorted {
		c.levels.Set(l.ID, l)
	}
	return c
}

// LoadCatalog loads the embedded level pack plus, if extraDir is set,
// the levels found there. Levels in extraDir replace built-in levels with
// the same ID.
func LoadCatalog(extraDir string, strict bool, logger *log.Logger) (*Catalog, error) {
	loader := Embedded()
	loader.Strict = strict
	loader.Logger = logger

	all, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	if extraDir != "" {
		extra := NewLoader(extraDir)
		extra.Strict = strict
		extra.Logger = logger
		more, err := extra.LoadAll()
		if err != nil {
			return nil, err
		}
		all = append(all, more...)
	}

	return NewCatalog(all...), nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return c.levels.Len()
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id string) (Level, error) {
	l, ok := c.levels.Get(id)
	if !ok {
		return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
	}
	return l, nil
}

// IDs returns level IDs in play order.
func (c *Catalog) IDs() []string {
	return c.levels.Keys()
}

// List returns all levels in play order.
func (c *Catalog) List() []Level {
	return lo.Map(c.levels.Keys(), func(id string, _ int) Level {
		l, _ := c.levels.Get(id)
		return l
	})
}

// First returns the first level in play order.
func (c *Catalog) First() (Level, bool) {
	ids := c.levels.Keys()
	if len(ids) == 0 {
		return Level{}, false
	}
	return c.levels.Get(ids[0])
}

// Index returns the position of a level in play order, or -1.
func (c *Catalog) Index(id string) int {
	return lo.IndexOf(c.levels.Keys(), id)
}

// Next returns the level after id, if any.
func (c *Catalog) Next(id string) (Level, bool) {
	ids := c.levels.Keys()
	i := lo.IndexOf(ids, id)
	if i < 0 || i+1 >= len(ids) {
		return Level{}, false
	}
	return c.levels.Get(ids[i+1])
}
