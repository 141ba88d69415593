package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/config"
	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/room"
	"github.com/lixenwraith/dash-arena/vmath"
)

const dt = parameter.TickInterval

// testConfig is the stock tuning without room population
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Spawn.Base = 0
	cfg.Spawn.PerRoom = 0
	return cfg
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(testConfig(), 1, nil, nil)
}

func dummyStats(health float64, ai component.AI) component.EnemyStats {
	return component.EnemyStats{
		Name:   "dummy",
		Health: vmath.FromFloat(health),
		Damage: vmath.FromInt(10),
		Shape:  component.Circle{Radius: vmath.FromFloat(0.5)},
		AI:     ai,
	}
}

// draw feeds one candidate per tick, then releases
func draw(w *World, out *Output, points ...vmath.Vec2) {
	for _, p := range points {
		w.Update(Controls{Drawing: &p}, dt, out)
	}
}

func release(w *World, out *Output) {
	w.Update(Controls{}, dt, out)
}

func countSounds(events []event.Event, s event.Sound) int {
	n := 0
	for _, e := range events {
		if e.Sound == s {
			n++
		}
	}
	return n
}

// TestScenarioInsideStroke draws an L inside the starting room: no clamp, no unlock
func TestScenarioInsideStroke(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()

	draw(w, out, vmath.VF(0, 0), vmath.VF(4, 0), vmath.VF(4, 4))
	require.NotNil(t, w.player.Drawing)
	assert.InDelta(t, 8.0, vmath.ToFloat(w.player.Drawing.Length()), 1e-6, "no clamping below budget")
	assert.GreaterOrEqual(t, len(w.player.Drawing.Smoothed()), 2)
	assert.Equal(t, 3, countSounds(out.Events.Drain(), event.SoundDrawing))
	assert.Equal(t, 3, out.Particles.Len())
	out.Particles.Drain()

	release(w, out)
	assert.Nil(t, w.player.Drawing)

	snap := w.Snapshot()
	assert.InDelta(t, 4.0, vmath.ToFloat(snap.Player.Collider.Position.X), 1e-6)
	assert.InDelta(t, 4.0, vmath.ToFloat(snap.Player.Collider.Position.Y), 1e-6)

	dir := snap.Player.Velocity.Normalize()
	assert.InDelta(t, 0.0, vmath.ToFloat(dir.X), 0.15)
	assert.InDelta(t, 1.0, vmath.ToFloat(dir.Y), 0.02)
	assert.InDelta(t, vmath.ToFloat(w.player.Stats.Dash.Speed), vmath.ToFloat(snap.Player.Velocity.Len()), 1e-3)

	assert.True(t, snap.Player.Invincibility.IsMax())
	assert.Len(t, snap.Rooms, 1)
	assert.Zero(t, countSounds(out.Events.Drain(), event.SoundExpand))
}

// TestScenarioUnlockRight ends a stroke one unit past the right wall
func TestScenarioUnlockRight(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()

	dist, dir, ok := func() (int64, room.Direction, bool) {
		r, _ := w.rooms.Get(w.rooms.Root())
		return r.ClosestWall(vmath.VF(6, 0))
	}()
	require.True(t, ok)
	assert.Equal(t, room.Right, dir)
	assert.Equal(t, vmath.FromInt(1), dist)

	draw(w, out, vmath.VF(0, 0), vmath.VF(6, 0))
	release(w, out)

	events := out.Events.Drain()
	assert.Equal(t, 1, countSounds(events, event.SoundExpand))

	snap := w.Snapshot()
	require.Len(t, snap.Rooms, 2)
	next := snap.Rooms[1]
	assert.Equal(t, vmath.FromInt(5), next.Area.Min.X)
	assert.Equal(t, room.Link{Parent: 0, Direction: room.Left}, *next.UnlockedAfter)
	assert.Equal(t, room.Right, *snap.Rooms[0].ExpandedDirection)
	assert.Len(t, snap.Walls, 6)

	assert.InDelta(t, 6.0, vmath.ToFloat(snap.Player.Collider.Position.X), 1e-6)

	var expandParticles int
	for _, req := range out.Particles.Drain() {
		if _, ok := req.Distribution.(particle.Area); ok && req.Kind == particle.KindWallBreakable {
			expandParticles++
		}
	}
	assert.Equal(t, 1, expandParticles)
}

// TestNoUnlockPastParentFarWall dashes from a child room back across its parent
func TestNoUnlockPastParentFarWall(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()

	draw(w, out, vmath.VF(0, 0), vmath.VF(6, 0))
	release(w, out)
	require.Equal(t, 2, w.rooms.Len())

	w.player.Body.Position = vmath.VF(8, 0)
	w.player.Body.Velocity = vmath.Vec2{}
	out.Events.Drain()
	out.Particles.Drain()

	draw(w, out, vmath.VF(0, 0), vmath.VF(-6, 0))
	require.NotNil(t, w.player.Drawing)
	last := w.player.Drawing.Last().Position
	assert.InDelta(t, 0.0, vmath.ToFloat(last.X), 1e-6, "point beyond the parent is rejected")
	release(w, out)

	assert.Equal(t, 2, w.rooms.Len())
	assert.Zero(t, countSounds(out.Events.Drain(), event.SoundExpand))
	assert.True(t, w.rooms.Contains(w.player.Body.Position))
}

// TestDashNoOp releases a stroke that never left its origin
func TestDashNoOp(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()

	before := w.Snapshot()
	draw(w, out, vmath.VF(0, 0), vmath.VF(0.01, 0))
	require.Len(t, w.player.Drawing.Smoothed(), 1)
	out.Events.Drain()
	out.Particles.Drain()

	release(w, out)
	after := w.Snapshot()

	assert.Equal(t, before.Player.Collider.Position, after.Player.Collider.Position)
	assert.Equal(t, before.Player.Velocity, after.Player.Velocity)
	assert.Equal(t, before.Player.Invincibility, after.Player.Invincibility)
	assert.Equal(t, before.Rooms, after.Rooms)
	assert.Zero(t, out.Events.Len())
	assert.Zero(t, out.Particles.Len())
}

// TestSingleHitPerStroke runs a path whose many segments all pass the same enemy
func TestSingleHitPerStroke(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	id := w.SpawnEnemy(dummyStats(100, &component.Idle{}), vmath.VF(2, 0.3))

	draw(w, out, vmath.VF(0, 0), vmath.VF(1, 0), vmath.VF(2, 0), vmath.VF(3, 0), vmath.VF(4, 0), vmath.VF(4, 4))
	require.Greater(t, len(w.player.Drawing.Smoothed()), 4)
	out.Events.Drain()
	release(w, out)

	require.Len(t, w.enemies, 1)
	assert.Equal(t, id, w.enemies[0].ID)
	assert.Equal(t, vmath.FromInt(90), w.enemies[0].Health.Current)

	events := out.Events.Drain()
	assert.Equal(t, 1, countSounds(events, event.SoundHit))
	assert.Zero(t, countSounds(events, event.SoundKill))
}

func TestDashKillsAndClearsGate(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.SpawnEnemy(dummyStats(5, &component.Idle{}), vmath.VF(2, 0))
	require.False(t, w.CanExpand())

	draw(w, out, vmath.VF(0, 0), vmath.VF(4, 0))
	out.Events.Drain()
	release(w, out)

	events := out.Events.Drain()
	assert.Equal(t, 1, countSounds(events, event.SoundKill))
	assert.Zero(t, countSounds(events, event.SoundHit))
	assert.Empty(t, w.enemies, "dead enemies are removed at end of tick")
	assert.True(t, w.CanExpand())
}

// TestOutsidePointsRejectedWhileEnemiesAlive checks the expansion gate during capture
func TestOutsidePointsRejectedWhileEnemiesAlive(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.SpawnEnemy(dummyStats(100, &component.Idle{}), vmath.VF(-4, -4))

	draw(w, out, vmath.VF(6, 0))
	require.NotNil(t, w.player.Drawing)
	assert.Len(t, w.player.Drawing.Raw(), 1, "candidate outside explored space is dropped")

	// Bullets do not block expansion
	w.enemies[0].AI = &component.Bullet{}
	draw(w, out, vmath.VF(6, 0))
	assert.Len(t, w.player.Drawing.Raw(), 2)
}

func TestStrokeBudgetClamp(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Dash.MaxDistance = 5
	w := New(cfg, 1, nil, nil)
	out := NewOutput()

	draw(w, out, vmath.VF(0, 0), vmath.VF(4, 0), vmath.VF(4, 4))
	last := w.player.Drawing.Last().Position
	assert.InDelta(t, 4.0, vmath.ToFloat(last.X), 1e-6)
	assert.InDelta(t, 1.0, vmath.ToFloat(last.Y), 1e-6)
	assert.InDelta(t, 5.0, vmath.ToFloat(w.player.Drawing.Length()), 1e-6)

	// Exhausted budget drops further points
	draw(w, out, vmath.VF(-3, -3))
	assert.Len(t, w.player.Drawing.Raw(), 4, "origin, first sample, two extensions")
	assert.Zero(t, w.Snapshot().Player.DashRemaining)
}

// TestInvincibilityAbsoluteReset verifies a dash restarts the full window
func TestInvincibilityAbsoluteReset(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.player.Invincibility.SetRatio(vmath.FromFloat(0.5))

	draw(w, out, vmath.VF(0, 0), vmath.VF(3, 0))
	release(w, out)
	assert.True(t, w.player.Invincibility.IsMax())
}

func TestShieldParticlesOnExpiry(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.player.Invincibility.Set(dt / 2)

	w.Update(Controls{}, dt, out)
	reqs := out.Particles.Drain()
	require.Len(t, reqs, 1)
	assert.Equal(t, particle.KindShield, reqs[0].Kind)
	c, ok := reqs[0].Distribution.(particle.Circle)
	require.True(t, ok)
	assert.Equal(t, parameter.ShieldRadius, c.Radius)

	w.Update(Controls{}, dt, out)
	assert.Zero(t, out.Particles.Len(), "emitted once per expiry")
}

func TestContactDamage(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.SpawnEnemy(dummyStats(100, &component.Idle{}), vmath.VF(0.5, 0))

	w.Update(Controls{}, dt, out)
	assert.Equal(t, 1, countSounds(out.Events.Drain(), event.SoundHitSelf))
	assert.Equal(t, vmath.FromInt(90), w.player.Health.Current)
	assert.True(t, w.player.Invincible())

	w.Update(Controls{}, dt, out)
	assert.Zero(t, countSounds(out.Events.Drain(), event.SoundHitSelf), "invincible after the hit")
	assert.Equal(t, vmath.FromInt(90), w.player.Health.Current)
}

func TestBulletDiesOnContact(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	w.player.Invincibility.SetRatio(vmath.Scale)
	w.SpawnEnemy(dummyStats(1, &component.Bullet{}), vmath.VF(0.3, 0))

	w.Update(Controls{}, dt, out)
	assert.Empty(t, w.enemies)
	assert.Equal(t, w.player.Health.Max, w.player.Health.Current)
}

func TestMovementFrozenWhileDrawing(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()

	for range 10 {
		w.Update(Controls{MoveDir: vmath.VF(1, 0)}, dt, out)
	}
	moved := w.player.Body.Position
	require.Positive(t, moved.X)
	assert.LessOrEqual(t, w.player.Body.Velocity.Len(), w.player.Stats.Speed+vmath.FromFloat(1e-6))

	p := vmath.VF(3, 3)
	w.Update(Controls{MoveDir: vmath.VF(1, 0), Drawing: &p}, dt, out)
	w.Update(Controls{MoveDir: vmath.VF(1, 0), Drawing: &p}, dt, out)
	assert.True(t, w.player.Body.Velocity.IsZero())
	assert.Equal(t, w.player.Drawing.Origin().Position, w.player.Body.Position)
}

func TestUnlockPopulatesRoom(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Base = 1
	cfg.Spawn.PerRoom = 1
	w := New(cfg, 7, nil, nil)
	out := NewOutput()

	draw(w, out, vmath.VF(0, 0), vmath.VF(0, 7))
	release(w, out)

	require.Equal(t, 2, w.rooms.Len())
	next, _ := w.rooms.Get(1)
	assert.GreaterOrEqual(t, len(w.enemies), 1)
	assert.LessOrEqual(t, len(w.enemies), 3)
	for _, e := range w.enemies {
		if !e.IsBullet() {
			assert.True(t, next.Area.Contains(e.Body.Position), "%s spawned outside the new room", e.Stats.Name)
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() Snapshot {
		w := New(config.Default(), 42, nil, nil)
		out := NewOutput()
		draw(w, out, vmath.VF(0, 0), vmath.VF(3, 0), vmath.VF(6, 1))
		release(w, out)
		for range 120 {
			w.Update(Controls{MoveDir: vmath.VF(0, 1)}, dt, out)
			out.Events.Drain()
			out.Particles.Drain()
		}
		return w.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestSnapshotIsolation(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	draw(w, out, vmath.VF(0, 0), vmath.VF(2, 0))

	snap := w.Snapshot()
	require.Len(t, snap.Player.Drawing, 2)

	draw(w, out, vmath.VF(2, 2))
	assert.Len(t, snap.Player.Drawing, 2)
	assert.InDelta(t, 2.0, vmath.ToFloat(snap.Player.Drawing[1].X), 1e-6)
}

func TestZeroDeltaIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	out := NewOutput()
	p := vmath.VF(1, 1)
	w.Update(Controls{Drawing: &p}, 0, out)
	assert.Nil(t, w.player.Drawing)
	assert.Zero(t, w.Time())
}
