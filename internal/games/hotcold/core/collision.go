package core

// Resolution is the outcome of one collision resolution pass.
type Resolution struct {
	Rect    Rect // body after push-out
	Landed  bool // pushed up onto a block
	Ceiling bool // pushed down from a block above
	Wall    bool // pushed sideways
}

// ResolveHorizontal pushes body out of every block it overlaps sideways.
// A contact counts as sideways only when the overlap is strictly narrower
// than it is tall. The body is snapped flush against the block edge on the
// side its left edge came from.
func ResolveHorizontal(body Rect, blocks []Rect) Resolution {
	res := Resolution{Rect: body}
	for _, block := range blocks {
		overlap, ok := res.Rect.Intersection(block)
		if !ok || overlap.W >= overlap.H {
			continue
		}
		res.Rect = pushSideways(res.Rect, block)
		res.Wall = true
	}
	return res
}

// ResolveVertical pushes body out of every block it overlaps from above or
// below. Contacts at least as wide as they are tall resolve vertically
// (ties included). If the body's top is above the block's top it lands,
// otherwise it has hit a ceiling. Narrow contacts are skipped.
//
// Once every landing and ceiling is applied, blocks that still overlap the
// body narrowly, such as the corner of a ledge clipped while falling, push
// it sideways.
func ResolveVertical(body Rect, blocks []Rect) Resolution {
	res := Resolution{Rect: body}
	for _, block := range blocks {
		overlap, ok := res.Rect.Intersection(block)
		if !ok || overlap.W < overlap.H {
			continue
		}
		if res.Rect.Y < block.Y {
			res.Rect.Y = block.Y - res.Rect.H
			res.Landed = true
		} else {
			res.Rect.Y = block.Bottom()
			res.Ceiling = true
		}
	}

	for _, block := range blocks {
		overlap, ok := res.Rect.Intersection(block)
		if !ok || overlap.W >= overlap.H {
			continue
		}
		res.Rect = pushSideways(res.Rect, block)
		res.Wall = true
	}
	return res
}

// PushOut runs both passes against a set of blocks.
func PushOut(body Rect, blocks []Rect) Resolution {
	h := ResolveHorizontal(body, blocks)
	v := ResolveVertical(h.Rect, blocks)
	v.Wall = v.Wall || h.Wall
	return v
}

func pushSideways(body, block Rect) Rect {
	if body.X < block.X {
		body.X = block.X - body.W
	} else {
		body.X = block.Right()
	}
	return body
}
