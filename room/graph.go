package room

import (
	"github.com/lixenwraith/dash-arena/vmath"
)

// Wall is a derived boundary collider on one side of a room
type Wall struct {
	Room ID
	Side Direction
	Area vmath.Rect
}

// Graph is the arena of rooms rooted at the starting room
// Walls are a cache recomputed from the room set after every unlock
type Graph struct {
	rooms     []Room
	walls     []Wall
	thickness int64
}

// NewGraph creates a graph holding only the starting room
func NewGraph(start vmath.Rect, wallThickness int64) *Graph {
	g := &Graph{
		rooms:     []Room{{Area: start}},
		thickness: wallThickness,
	}
	g.rebuildWalls()
	return g
}

// Root is the starting room
func (g *Graph) Root() ID { return 0 }

func (g *Graph) Len() int { return len(g.rooms) }

// Get returns a copy of the room, ok is false for unknown ids
func (g *Graph) Get(id ID) (Room, bool) {
	if id < 0 || int(id) >= len(g.rooms) {
		return Room{}, false
	}
	return g.rooms[id], true
}

// Rooms returns a deep copy of every room, indexed by ID
func (g *Graph) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	for i, r := range g.rooms {
		if r.UnlockedAfter != nil {
			link := *r.UnlockedAfter
			r.UnlockedAfter = &link
		}
		if r.ExpandedDirection != nil {
			dir := *r.ExpandedDirection
			r.ExpandedDirection = &dir
		}
		out[i] = r
	}
	return out
}

// Walls returns a snapshot copy of the wall colliders
func (g *Graph) Walls() []Wall {
	out := make([]Wall, len(g.walls))
	copy(out, g.walls)
	return out
}

// Find returns the first room containing p
func (g *Graph) Find(p vmath.Vec2) (ID, bool) {
	for i := range g.rooms {
		if g.rooms[i].Area.Contains(p) {
			return ID(i), true
		}
	}
	return 0, false
}

// Contains reports whether p lies in any explored room
func (g *Graph) Contains(p vmath.Vec2) bool {
	_, ok := g.Find(p)
	return ok
}

// EligibleToward evaluates the unlock predicate for room id against the wall nearest p
func (g *Graph) EligibleToward(id ID, p vmath.Vec2) (Direction, bool) {
	r, ok := g.Get(id)
	if !ok {
		return 0, false
	}
	_, dir, ok := r.ClosestWall(p)
	if !ok {
		return 0, false
	}
	return dir, r.CanExpand(dir)
}

// Unlock grows the graph through the wall of room id nearest to p
// The new room tiles the source along that side; rejected silently when ineligible
func (g *Graph) Unlock(id ID, p vmath.Vec2) (ID, bool) {
	dir, ok := g.EligibleToward(id, p)
	if !ok {
		return 0, false
	}

	src := &g.rooms[id]
	next := Room{
		Area:          src.neighborArea(dir),
		UnlockedAfter: &Link{Parent: id, Direction: dir.Opposite()},
	}
	expanded := dir
	src.ExpandedDirection = &expanded

	g.rooms = append(g.rooms, next)
	g.rebuildWalls()
	return ID(len(g.rooms) - 1), true
}

// rebuildWalls derives colliders for every side that is not an opening
// A side is open when it was expanded through, faces the parent, or borders another room
func (g *Graph) rebuildWalls() {
	g.walls = g.walls[:0]
	for i := range g.rooms {
		r := &g.rooms[i]
		for _, d := range Directions {
			if g.isOpen(ID(i), d) {
				continue
			}
			g.walls = append(g.walls, Wall{Room: ID(i), Side: d, Area: g.wallArea(r.Area, d)})
		}
	}
}

func (g *Graph) isOpen(id ID, d Direction) bool {
	r := &g.rooms[id]
	if r.ExpandedDirection != nil && *r.ExpandedDirection == d {
		return true
	}
	if r.UnlockedAfter != nil && r.UnlockedAfter.Direction == d {
		return true
	}

	// Probe just beyond the side midpoint
	probe := r.Area.Center()
	switch d {
	case Left:
		probe.X = r.Area.Min.X - g.thickness/2
	case Right:
		probe.X = r.Area.Max.X + g.thickness/2
	case Down:
		probe.Y = r.Area.Min.Y - g.thickness/2
	case Up:
		probe.Y = r.Area.Max.Y + g.thickness/2
	}
	for i := range g.rooms {
		if ID(i) != id && g.rooms[i].Area.Contains(probe) {
			return true
		}
	}
	return false
}

func (g *Graph) wallArea(a vmath.Rect, d Direction) vmath.Rect {
	t := g.thickness
	switch d {
	case Left:
		return vmath.Rect{Min: vmath.V(a.Min.X-t, a.Min.Y-t), Max: vmath.V(a.Min.X, a.Max.Y+t)}
	case Right:
		return vmath.Rect{Min: vmath.V(a.Max.X, a.Min.Y-t), Max: vmath.V(a.Max.X+t, a.Max.Y+t)}
	case Down:
		return vmath.Rect{Min: vmath.V(a.Min.X-t, a.Min.Y-t), Max: vmath.V(a.Max.X+t, a.Min.Y)}
	default:
		return vmath.Rect{Min: vmath.V(a.Min.X-t, a.Max.Y), Max: vmath.V(a.Max.X+t, a.Max.Y+t)}
	}
}
