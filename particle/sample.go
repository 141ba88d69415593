package particle

import (
	"github.com/lixenwraith/dash-arena/vmath"
)

// pi in Q32.32
var pi = vmath.FromFloat(3.141592653589793)

// Count realizes an expected count by stochastic rounding
// floor(expected) plus one more with probability frac(expected), so the mean is exact
func Count(expected int64, rng *vmath.FastRand) int {
	if expected <= 0 {
		return 0
	}
	n := vmath.ToInt(vmath.Floor(expected))
	if rng.Chance(vmath.Frac(expected)) {
		n++
	}
	return n
}

// Measure returns the area-like measure the density applies to
func Measure(dist Distribution) int64 {
	switch d := dist.(type) {
	case Circle:
		return vmath.Mul(vmath.Mul(d.Radius, d.Radius), pi)
	case Area:
		return d.Rect.Area()
	case Ribbon:
		var total int64
		for i := 1; i < len(d.Points); i++ {
			total += vmath.Mul(d.Points[i].Sub(d.Points[i-1]).Len(), d.Width)
		}
		return total
	}
	return 0
}

// Sample converts a distribution and density into discrete positions
// Pure apart from rng
func Sample(dist Distribution, density int64, rng *vmath.FastRand) []vmath.Vec2 {
	switch d := dist.(type) {
	case Circle:
		return sampleCircle(d, Count(vmath.Mul(density, Measure(d)), rng), rng)
	case Area:
		return sampleArea(d.Rect, Count(vmath.Mul(density, d.Rect.Area()), rng), rng)
	case Ribbon:
		return sampleRibbon(d, density, rng)
	}
	return nil
}

// sampleCircle uses rejection from the bounding square, uniform in the disk without trig
func sampleCircle(c Circle, n int, rng *vmath.FastRand) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, n)
	if c.Radius <= 0 {
		for range n {
			out = append(out, c.Center)
		}
		return out
	}
	rSq := vmath.Mul(c.Radius, c.Radius)
	for len(out) < n {
		off := vmath.V(rng.Range(-c.Radius, c.Radius), rng.Range(-c.Radius, c.Radius))
		if off.LenSq() > rSq {
			continue
		}
		out = append(out, c.Center.Add(off))
	}
	return out
}

func sampleArea(r vmath.Rect, n int, rng *vmath.FastRand) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, n)
	for range n {
		out = append(out, vmath.V(
			rng.Range(r.Min.X, r.Max.X),
			rng.Range(r.Min.Y, r.Max.Y),
		))
	}
	return out
}

// sampleRibbon resamples the count per segment: a + (b-a)*t + normal*width*u
func sampleRibbon(rb Ribbon, density int64, rng *vmath.FastRand) []vmath.Vec2 {
	var out []vmath.Vec2
	for i := 1; i < len(rb.Points); i++ {
		a, b := rb.Points[i-1], rb.Points[i]
		ab := b.Sub(a)
		normal := ab.Normalize().Perp()

		n := Count(vmath.Mul(density, vmath.Mul(ab.Len(), rb.Width)), rng)
		for range n {
			t := rng.Fixed()
			u := rng.Range(-vmath.Scale, vmath.Scale)
			out = append(out, a.Add(ab.Scale(t)).Add(normal.Scale(vmath.Mul(rb.Width, u))))
		}
	}
	return out
}
