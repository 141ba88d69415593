// Package stroke captures a player-drawn path under a distance budget
package stroke

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// DrawPoint is one captured sample, immutable once appended
type DrawPoint struct {
	Position   vmath.Vec2
	CapturedAt time.Duration
}

// Drawing is an in-progress stroke
// Raw points are never empty: the only constructor seeds the origin
type Drawing struct {
	raw      []DrawPoint
	smoothed []vmath.Vec2
	length   int64
}

// New starts a stroke at origin
func New(origin DrawPoint) *Drawing {
	d := &Drawing{raw: []DrawPoint{origin}}
	d.smoothed = Smooth([]vmath.Vec2{origin.Position})
	return d
}

// Origin returns the stroke's first point
func (d *Drawing) Origin() DrawPoint { return d.raw[0] }

// Last returns the most recently accepted point
func (d *Drawing) Last() DrawPoint { return d.raw[len(d.raw)-1] }

// Raw returns a copy of the captured points in insertion order
func (d *Drawing) Raw() []DrawPoint {
	out := make([]DrawPoint, len(d.raw))
	copy(out, d.raw)
	return out
}

// Smoothed returns the derived curve; callers must not mutate it
func (d *Drawing) Smoothed() []vmath.Vec2 { return d.smoothed }

// Length is the sum of raw segment lengths
func (d *Drawing) Length() int64 { return d.length }

// Remaining is the budget left before maxDistance is reached
func (d *Drawing) Remaining(maxDistance int64) int64 {
	return maxDistance - d.length
}

// Extend appends candidate clamped to at most the remaining budget from the last point
// Returns false without mutation when the budget is exhausted
func (d *Drawing) Extend(candidate vmath.Vec2, at time.Duration, maxDistance int64) bool {
	remaining := d.Remaining(maxDistance)
	if remaining <= 0 {
		return false
	}

	last := d.Last().Position
	step := candidate.Sub(last).ClampLen(remaining)
	pos := last.Add(step)

	d.raw = append(d.raw, DrawPoint{Position: pos, CapturedAt: at})
	d.length += step.Len()

	positions := make([]vmath.Vec2, len(d.raw))
	for i, p := range d.raw {
		positions[i] = p.Position
	}
	d.smoothed = Smooth(positions)
	return true
}
