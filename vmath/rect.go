package vmath

// Rect is an axis-aligned rectangle, Min is bottom-left and Max is top-right (+Y up)
type Rect struct {
	Min, Max Vec2
}

// RectCentered builds a rectangle around center with the given half extents
func RectCentered(center Vec2, halfW, halfH int64) Rect {
	return Rect{
		Min: Vec2{center.X - halfW, center.Y - halfH},
		Max: Vec2{center.X + halfW, center.Y + halfH},
	}
}

func (r Rect) Width() int64  { return r.Max.X - r.Min.X }
func (r Rect) Height() int64 { return r.Max.Y - r.Min.Y }
func (r Rect) Area() int64   { return Mul(r.Width(), r.Height()) }

func (r Rect) Center() Vec2 {
	return Vec2{r.Min.X + r.Width()/2, r.Min.Y + r.Height()/2}
}

// Contains reports whether p lies inside r, boundary included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether two rectangles share interior area
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Translate shifts the rectangle by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Grow extends every side by m (negative shrinks)
func (r Rect) Grow(m int64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - m, r.Min.Y - m},
		Max: Vec2{r.Max.X + m, r.Max.Y + m},
	}
}

// Clamp returns the point of r closest to p
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{Clamp(p.X, r.Min.X, r.Max.X), Clamp(p.Y, r.Min.Y, r.Max.Y)}
}
