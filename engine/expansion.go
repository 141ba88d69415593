package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/room"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/vmath"
)

// unlockRoom grows the graph from src toward p and populates the new room
func (w *World) unlockRoom(src room.ID, p vmath.Vec2, out *Output) (room.ID, bool) {
	id, ok := w.rooms.Unlock(src, p)
	if !ok {
		return 0, false
	}
	r, _ := w.rooms.Get(id)

	out.sound(event.SoundExpand)
	out.spawn(particle.Spawn(particle.KindWallBreakable, particle.Area{Rect: r.Area}).
		WithDensity(parameter.ExpandParticleDensity))
	w.metrics.Inc(status.Expansions)

	spawned := w.populate(r.Area)
	w.logger.Debug("room unlocked",
		zap.Int("room", int(id)),
		zap.Int("from", int(src)),
		zap.Stringer("direction", r.UnlockedAfter.Direction.Opposite()),
		zap.Int("enemies", spawned),
	)
	return id, true
}

// populate spawns base + per_room * rooms enemies from the pool inside area
func (w *World) populate(area vmath.Rect) int {
	if len(w.pool) == 0 {
		return 0
	}
	n := w.spawnBase + w.spawnPerRoom*w.rooms.Len()
	inner := area.Grow(-parameter.SpawnMargin)
	if inner.Width() <= 0 || inner.Height() <= 0 {
		inner = area
	}

	spawned := 0
	for range n {
		stats, ok := w.catalog[w.pool[w.rng.Intn(len(w.pool))]]
		if !ok {
			continue
		}
		w.SpawnEnemy(stats, w.spawnPosition(inner))
		spawned++
	}
	return spawned
}

// spawnPosition samples inner, preferring points clear of the player
func (w *World) spawnPosition(inner vmath.Rect) vmath.Vec2 {
	clearanceSq := vmath.Mul(parameter.SpawnClearance, parameter.SpawnClearance)
	var pos vmath.Vec2
	for range parameter.SpawnAttempts {
		pos = vmath.V(
			w.rng.Range(inner.Min.X, inner.Max.X),
			w.rng.Range(inner.Min.Y, inner.Max.Y),
		)
		if pos.DistSq(w.player.Body.Position) >= clearanceSq {
			break
		}
	}
	return pos
}
