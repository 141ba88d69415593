// Package room owns the explorable level: a tree of rectangular rooms grown by one-shot unlocks
package room

import (
	"math"

	"github.com/lixenwraith/dash-arena/vmath"
)

// ID addresses a room in the graph arena, stable across insertions
type ID int

// Link is the non-owning back-reference to the room this one was unlocked from
// Direction is the side of this room that faces the parent
type Link struct {
	Parent    ID
	Direction Direction
}

// Room is a rectangular explorable area
// ExpandedDirection is set at most once and never cleared
type Room struct {
	Area              vmath.Rect
	UnlockedAfter     *Link
	ExpandedDirection *Direction
}

// Expanded reports whether the one-shot expansion gate has been used
func (r *Room) Expanded() bool {
	return r.ExpandedDirection != nil
}

// ClosestWall finds the side p lies beyond with the smallest positive outward distance
// ok is false when p is inside on every axis: no wall qualifies for an unlock
func (r *Room) ClosestWall(p vmath.Vec2) (dist int64, dir Direction, ok bool) {
	dist = math.MaxInt64
	candidates := [4]struct {
		d   Direction
		out int64
	}{
		{Left, r.Area.Min.X - p.X},
		{Right, p.X - r.Area.Max.X},
		{Down, r.Area.Min.Y - p.Y},
		{Up, p.Y - r.Area.Max.Y},
	}
	for _, c := range candidates {
		if c.out > 0 && c.out < dist {
			dist, dir, ok = c.out, c.d, true
		}
	}
	if !ok {
		return 0, Left, false
	}
	return dist, dir, true
}

// CanExpand is the eligibility predicate for unlocking r through side d
// The second clause rejects the side facing the parent, so a child never regrows it
func (r *Room) CanExpand(d Direction) bool {
	if r.Expanded() {
		return false
	}
	return r.UnlockedAfter == nil || r.UnlockedAfter.Direction != d
}

// neighborArea is r's area tiled once along d
func (r *Room) neighborArea(d Direction) vmath.Rect {
	var offset vmath.Vec2
	switch d {
	case Left:
		offset = vmath.V(-r.Area.Width(), 0)
	case Right:
		offset = vmath.V(r.Area.Width(), 0)
	case Down:
		offset = vmath.V(0, -r.Area.Height())
	case Up:
		offset = vmath.V(0, r.Area.Height())
	}
	return r.Area.Translate(offset)
}
