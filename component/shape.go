package component

import (
	"github.com/lixenwraith/dash-arena/vmath"
)

// Shape is a collider outline, closed set: Circle, Box
type Shape interface {
	// Extent returns the half-size of the axis-aligned bounding box
	Extent() vmath.Vec2
}

// Circle is a disk of Radius
type Circle struct {
	Radius int64
}

// Box is an axis-aligned rectangle of full Width and Height
type Box struct {
	Width  int64
	Height int64
}

func (c Circle) Extent() vmath.Vec2 { return vmath.V(c.Radius, c.Radius) }
func (b Box) Extent() vmath.Vec2    { return vmath.V(b.Width/2, b.Height/2) }

// Collider places a shape in the world
type Collider struct {
	Position vmath.Vec2
	Shape    Shape
}

// Bounds returns the axis-aligned bounding box
func (c Collider) Bounds() vmath.Rect {
	e := c.Shape.Extent()
	return vmath.RectCentered(c.Position, e.X, e.Y)
}

// Radius returns the circle radius or the box's inscribed half-extent
func (c Collider) Radius() int64 {
	switch s := c.Shape.(type) {
	case Circle:
		return s.Radius
	case Box:
		return vmath.Min(s.Width, s.Height) / 2
	}
	return 0
}

// SegmentDistance is the gap between the collider outline and segment ab, zero when touching
func (c Collider) SegmentDistance(a, b vmath.Vec2) int64 {
	switch s := c.Shape.(type) {
	case Circle:
		return vmath.Max(0, vmath.SegmentPointDistance(a, b, c.Position)-s.Radius)
	case Box:
		return vmath.SegmentRectDistance(a, b, c.Bounds())
	}
	return vmath.SegmentPointDistance(a, b, c.Position)
}

// Overlaps reports whether two colliders intersect, boxes approximate circles by their bounds
func (c Collider) Overlaps(o Collider) bool {
	if a, ok := c.Shape.(Circle); ok {
		if b, ok := o.Shape.(Circle); ok {
			r := a.Radius + b.Radius
			return c.Position.DistSq(o.Position) < vmath.Mul(r, r)
		}
	}
	return c.Bounds().Overlaps(o.Bounds())
}

// Penetration returns the push that moves c out of rect r along the shallowest axis
// ok is false when they do not overlap
func (c Collider) Penetration(r vmath.Rect) (push vmath.Vec2, ok bool) {
	b := c.Bounds()
	if !b.Overlaps(r) {
		return vmath.Vec2{}, false
	}
	left := b.Max.X - r.Min.X
	right := r.Max.X - b.Min.X
	down := b.Max.Y - r.Min.Y
	up := r.Max.Y - b.Min.Y

	best := left
	push = vmath.V(-left, 0)
	if right < best {
		best, push = right, vmath.V(right, 0)
	}
	if down < best {
		best, push = down, vmath.V(0, -down)
	}
	if up < best {
		push = vmath.V(0, up)
	}
	return push, true
}
