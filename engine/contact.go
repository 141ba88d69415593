package engine

import (
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/vmath"
)

// confineBodies pushes bodies out of wall colliders and reflects their normal velocity
// Enemy bounces are reported, bullets die against walls
func (w *World) confineBodies(out *Output) {
	walls := w.rooms.Walls()

	for _, wall := range walls {
		bounce(&w.player.Body, wall.Area)
	}

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive() {
			continue
		}
		for _, wall := range walls {
			if !bounce(&e.Body, wall.Area) {
				continue
			}
			if e.IsBullet() {
				e.Health.Set(0)
				break
			}
			out.sound(event.SoundBounce)
			out.burst(particle.KindBounce, e.Body.Position, e.Body.Radius(), parameter.ParticleDensity)
		}
	}
}

// bounce resolves one body against one wall, reporting whether they touched
func bounce(b *component.Body, wall vmath.Rect) bool {
	push, ok := b.Penetration(wall)
	if !ok {
		return false
	}
	b.Position = b.Position.Add(push)
	if push.X != 0 && (b.Velocity.X > 0) != (push.X > 0) {
		b.Velocity.X = -b.Velocity.X
	}
	if push.Y != 0 && (b.Velocity.Y > 0) != (push.Y > 0) {
		b.Velocity.Y = -b.Velocity.Y
	}
	return true
}

// contactDamage hurts a vulnerable player touching any enemy
// Damage restarts the invincibility window, so at most one hit lands per window
func (w *World) contactDamage(out *Output) {
	p := &w.player
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive() || !e.Body.Overlaps(p.Body.Collider) {
			continue
		}
		if e.IsBullet() {
			e.Health.Set(0)
		}
		if p.Invincible() {
			continue
		}

		p.Health.Change(-e.Stats.Damage)
		p.Invincibility.SetRatio(vmath.Scale)
		w.metrics.Inc(status.HitsTaken)
		out.sound(event.SoundHitSelf)
		out.burst(particle.KindHitSelf, p.Body.Position, p.Body.Radius(), parameter.ImpactParticleDensity)
		w.logger.Debug("player hit",
			zap.String("by", e.Stats.Name),
			zap.Float64("health", vmath.ToFloat(p.Health.Current)),
		)
	}
}

// removeDead compacts the enemy list
func (w *World) removeDead() {
	w.enemies = slices.DeleteFunc(w.enemies, func(e component.Enemy) bool {
		return !e.Alive()
	})
}
