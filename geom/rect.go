package geom

import "fmt"

// Rect is a rectangle given by two corner points (X0, Y0) and (X1, Y1).
// The coordinate system has x growing to the right and y growing downwards,
// so (X0, Y0) is the top-left corner for non-degenerate rectangles.
//
// Rect places no constraint on the corner order: operations keep degenerate
// and inverted rectangles as they are instead of normalizing them.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Dx returns the width of r. Negative for inverted rectangles.
func (r Rect) Dx() int {
	return r.X1 - r.X0
}

// Dy returns the height of r. Negative for inverted rectangles.
func (r Rect) Dy() int {
	return r.Y1 - r.Y0
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Intersect clips r against o. The returned rectangle holds the clip
// coordinates even if the intersection is empty; ok tells whether any area
// is left. Callers that only need the coordinates may ignore ok.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	c := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	return c, c.X1 > c.X0 && c.Y1 > c.Y0
}
