package vmath

// ClosestOnSegment returns the point of segment ab closest to p
// Degenerate segment (a == b) collapses to a
func ClosestOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return a
	}
	t := Clamp(Div(p.Sub(a).Dot(ab), lenSq), 0, Scale)
	return a.Add(ab.Scale(t))
}

// SegmentPointDistance returns minimum distance from p to segment ab
func SegmentPointDistance(a, b, p Vec2) int64 {
	return ClosestOnSegment(a, b, p).Sub(p).Len()
}

// SegmentRectDistance returns minimum distance between segment ab and rectangle r
// Zero when the segment touches or crosses the rectangle
func SegmentRectDistance(a, b Vec2, r Rect) int64 {
	if r.Contains(a) || r.Contains(b) || segmentCrossesRect(a, b, r) {
		return 0
	}

	corners := [4]Vec2{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}

	best := r.Clamp(a).Sub(a).Len()
	if d := r.Clamp(b).Sub(b).Len(); d < best {
		best = d
	}
	for _, c := range corners {
		if d := SegmentPointDistance(a, b, c); d < best {
			best = d
		}
	}
	return best
}

// segmentCrossesRect tests ab against the four rectangle edges
func segmentCrossesRect(a, b Vec2, r Rect) bool {
	corners := [4]Vec2{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
	for i := range corners {
		if segmentsIntersect(a, b, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

func cross(o, a, b Vec2) int64 {
	return Mul(a.X-o.X, b.Y-o.Y) - Mul(a.Y-o.Y, b.X-o.X)
}

func sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func segmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	d1 := sign(cross(q1, q2, p1))
	d2 := sign(cross(q1, q2, p2))
	d3 := sign(cross(p1, p2, q1))
	d4 := sign(cross(p1, p2, q2))
	if d1 != d2 && d3 != d4 && d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 {
		return true
	}
	// Collinear touching cases
	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

func onSegment(a, b, p Vec2) bool {
	return p.X >= Min(a.X, b.X) && p.X <= Max(a.X, b.X) &&
		p.Y >= Min(a.Y, b.Y) && p.Y <= Max(a.Y, b.Y)
}
