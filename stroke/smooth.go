package stroke

import (
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/vmath"
)

// Smooth turns raw captured positions into the display/collision curve
// Consecutive near-duplicates are collapsed first; fewer than 3 distinct points
// yield a straight polyline, otherwise a cardinal spline is tessellated
func Smooth(points []vmath.Vec2) []vmath.Vec2 {
	kept := Dedup(points, parameter.DedupDistanceSq)
	if len(kept) < 3 {
		return kept
	}
	return cardinalChain(kept, parameter.SplineTension, parameter.SplineSubdivisions)
}

// Dedup drops every point closer than sqrt(minDistSq) to the previously kept point
func Dedup(points []vmath.Vec2, minDistSq int64) []vmath.Vec2 {
	if len(points) == 0 {
		return nil
	}
	out := make([]vmath.Vec2, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if out[len(out)-1].DistSq(p) < minDistSq {
			continue
		}
		out = append(out, p)
	}
	return out
}

// cardinalChain samples a cardinal spline through points with cubic Hermite segments
// Tangent at i is tension*(p[i+1]-p[i-1]), endpoints reuse themselves as the missing neighbor
// Output passes through every input point: subdivisions*(n-1)+1 vertices
func cardinalChain(points []vmath.Vec2, tension int64, subdivisions int) []vmath.Vec2 {
	n := len(points)
	tangents := make([]vmath.Vec2, n)
	for i := range points {
		prev := points[max(i-1, 0)]
		next := points[min(i+1, n-1)]
		tangents[i] = next.Sub(prev).Scale(tension)
	}

	// Hermite basis is identical for every segment, compute once per step
	type basis struct{ h00, h10, h01, h11 int64 }
	steps := make([]basis, subdivisions)
	for k := range steps {
		t := vmath.Div(vmath.FromInt(k), vmath.FromInt(subdivisions))
		t2 := vmath.Mul(t, t)
		t3 := vmath.Mul(t2, t)
		steps[k] = basis{
			h00: 2*t3 - 3*t2 + vmath.Scale,
			h10: t3 - 2*t2 + t,
			h01: -2*t3 + 3*t2,
			h11: t3 - t2,
		}
	}

	out := make([]vmath.Vec2, 0, subdivisions*(n-1)+1)
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		m0, m1 := tangents[i], tangents[i+1]
		out = append(out, p0)
		for _, b := range steps[1:] {
			out = append(out, p0.Scale(b.h00).
				Add(m0.Scale(b.h10)).
				Add(p1.Scale(b.h01)).
				Add(m1.Scale(b.h11)))
		}
	}
	out = append(out, points[n-1])
	return out
}
