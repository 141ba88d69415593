package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dash-arena/vmath"
)

func startGraph() *Graph {
	return NewGraph(vmath.RectCentered(vmath.Vec2{}, vmath.FromInt(5), vmath.FromInt(5)), vmath.FromFloat(0.2))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "involution for %s", d)
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d.Unit().Neg(), d.Opposite().Unit())
	}
}

func TestClosestWall(t *testing.T) {
	r := Room{Area: vmath.RectCentered(vmath.Vec2{}, vmath.FromInt(5), vmath.FromInt(5))}

	tests := []struct {
		name   string
		p      vmath.Vec2
		want   Direction
		dist   float64
		wantOk bool
	}{
		{"right by one", vmath.VF(6, 0), Right, 1, true},
		{"left", vmath.VF(-7, 2), Left, 2, true},
		{"down", vmath.VF(0, -5.5), Down, 0.5, true},
		{"up", vmath.VF(1, 9), Up, 4, true},
		{"diagonal picks nearer", vmath.VF(6, 7), Right, 1, true},
		{"strictly inside", vmath.VF(1, 1), Left, 0, false},
		{"on boundary", vmath.VF(5, 0), Left, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, dir, ok := r.ClosestWall(tt.p)
			require.Equal(t, tt.wantOk, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, dir)
			assert.InDelta(t, tt.dist, vmath.ToFloat(dist), 1e-9)
		})
	}
}

func TestUnlockCreatesAdjacentRoom(t *testing.T) {
	g := startGraph()
	require.Len(t, g.Walls(), 4)

	id, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)
	assert.Equal(t, ID(1), id)
	assert.Equal(t, 2, g.Len())

	next, _ := g.Get(id)
	assert.Equal(t, vmath.FromInt(5), next.Area.Min.X)
	assert.Equal(t, vmath.FromInt(15), next.Area.Max.X)
	assert.Equal(t, vmath.FromInt(-5), next.Area.Min.Y)
	require.NotNil(t, next.UnlockedAfter)
	assert.Equal(t, Link{Parent: 0, Direction: Left}, *next.UnlockedAfter)
	assert.Nil(t, next.ExpandedDirection)

	root, _ := g.Get(g.Root())
	require.NotNil(t, root.ExpandedDirection)
	assert.Equal(t, Right, *root.ExpandedDirection)

	assert.True(t, g.Contains(vmath.VF(6, 0)))
	// Root loses its right wall, the child its left wall
	assert.Len(t, g.Walls(), 6)
	for _, w := range g.Walls() {
		assert.False(t, w.Room == 0 && w.Side == Right)
		assert.False(t, w.Room == 1 && w.Side == Left)
	}
}

// TestUnlockOneShot verifies a room can expand once, whatever the direction
func TestUnlockOneShot(t *testing.T) {
	g := startGraph()
	_, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)

	for _, p := range []vmath.Vec2{vmath.VF(6, 0), vmath.VF(-6, 0), vmath.VF(0, 8), vmath.VF(0, -8)} {
		_, ok := g.Unlock(g.Root(), p)
		assert.False(t, ok, "root must stay expanded for %v", p)
	}
	root, _ := g.Get(g.Root())
	for _, d := range Directions {
		assert.False(t, root.CanExpand(d))
	}
	assert.Equal(t, 2, g.Len())
}

func TestUnlockRejectsInsidePoint(t *testing.T) {
	g := startGraph()
	_, ok := g.Unlock(g.Root(), vmath.VF(1, 1))
	assert.False(t, ok)
	assert.Equal(t, 1, g.Len())

	_, ok = g.Unlock(ID(42), vmath.VF(9, 9))
	assert.False(t, ok, "unknown room is ineligible")
}

// TestNoBacktrack checks the parent-link clause of the eligibility predicate
func TestNoBacktrack(t *testing.T) {
	g := startGraph()
	child, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)

	c, _ := g.Get(child)
	assert.False(t, c.CanExpand(Left), "side facing the parent is blocked")
	assert.True(t, c.CanExpand(Right))
	assert.True(t, c.CanExpand(Up))
	assert.True(t, c.CanExpand(Down))

	// Nearest child wall is Left both inside the parent and past its far wall
	for _, back := range []vmath.Vec2{vmath.VF(4, 0), vmath.VF(-6, 0)} {
		_, ok = g.Unlock(child, back)
		assert.False(t, ok, "no unlock toward the parent for %v", back)
	}
	assert.Equal(t, 2, g.Len())
}

// TestRoomsAreDisjoint checks every unlock tiles a fresh cell
func TestRoomsAreDisjoint(t *testing.T) {
	g := startGraph()
	child, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)
	_, ok = g.Unlock(child, vmath.VF(10, 7))
	require.True(t, ok)

	rooms := g.Rooms()
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			assert.NotEqual(t, rooms[i].Area, rooms[j].Area, "rooms %d and %d share a cell", i, j)
		}
	}
}

func TestRoomsDeepCopy(t *testing.T) {
	g := startGraph()
	_, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)

	snap := g.Rooms()
	*snap[0].ExpandedDirection = Up
	snap[1].UnlockedAfter.Parent = 7

	root, _ := g.Get(g.Root())
	assert.Equal(t, Right, *root.ExpandedDirection)
	next, _ := g.Get(1)
	assert.Equal(t, ID(0), next.UnlockedAfter.Parent)
}

func TestChainedUnlock(t *testing.T) {
	g := startGraph()
	child, ok := g.Unlock(g.Root(), vmath.VF(6, 0))
	require.True(t, ok)

	grandchild, ok := g.Unlock(child, vmath.VF(10, 6))
	require.True(t, ok)

	gc, _ := g.Get(grandchild)
	assert.Equal(t, vmath.FromInt(5), gc.Area.Min.Y)
	assert.Equal(t, vmath.FromInt(5), gc.Area.Min.X)
	assert.Equal(t, Link{Parent: child, Direction: Down}, *gc.UnlockedAfter)

	id, found := g.Find(vmath.VF(10, 8))
	require.True(t, found)
	assert.Equal(t, grandchild, id)
}

func TestRoomsSnapshotIsolation(t *testing.T) {
	g := startGraph()
	snap := g.Rooms()
	_, ok := g.Unlock(g.Root(), vmath.VF(0, 7))
	require.True(t, ok)

	assert.Len(t, snap, 1)
	assert.Nil(t, snap[0].ExpandedDirection, "snapshot taken before unlock is unchanged")
}
