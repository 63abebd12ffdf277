package hotcold

import platformcore "github.com/vovakirdan/hotcold/internal/core"

// control turns press-only key events into held intent.
// A horizontal press holds for a number of ticks and is refreshed by key
// repeat; pressing the opposite direction replaces the hold.
type control struct {
	dir  int // -1 left, 0 none, 1 right
	hold int // ticks left on the current direction
	jump bool
}

func (c *control) press(f platformcore.InputFrame, holdTicks int) {
	left, right := f.Has(platformcore.ActionLeft), f.Has(platformcore.ActionRight)
	switch {
	case left && right:
		c.dir, c.hold = 0, 0
	case left:
		c.dir, c.hold = -1, holdTicks
	case right:
		c.dir, c.hold = 1, holdTicks
	}
	if f.Has(platformcore.ActionJump) {
		c.jump = true
	}
}

func (c *control) intent() (left, right, jump bool) {
	return c.dir < 0, c.dir > 0, c.jump
}

// release ages the hold and consumes the jump edge.
func (c *control) release() {
	c.jump = false
	if c.hold > 0 {
		c.hold--
	}
	if c.hold == 0 {
		c.dir = 0
	}
}
