package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/room"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/stroke"
	"github.com/lixenwraith/dash-arena/vmath"
)

// resolveDash turns a finished stroke into movement, sweep damage and an optional unlock
// Strokes with fewer than two smoothed points change nothing
func (w *World) resolveDash(d *stroke.Drawing, out *Output) {
	path := d.Smoothed()
	if len(path) < 2 {
		return
	}

	p := &w.player
	origin := p.Body.Position
	expandFrom, expandOK := room.ID(0), false
	if w.CanExpand() {
		expandFrom, expandOK = w.rooms.Find(origin)
	}

	last, prelast := path[len(path)-1], path[len(path)-2]
	p.Body.Position = last
	p.Body.Velocity = last.Sub(prelast).Normalize().Scale(p.Stats.Dash.Speed)
	p.Invincibility.SetRatio(vmath.Scale)

	hits := w.damageAround(path, p.Stats.Dash.Width, p.Stats.Dash.Damage, out)
	w.metrics.Inc(status.Dashes)

	unlocked := false
	if expandOK && !w.rooms.Contains(last) {
		if id, ok := w.unlockRoom(expandFrom, last, out); ok {
			unlocked = true
			expandFrom = id
		}
	}

	// Overshoot past the new room's corner or an ineligible exit: pull back inside
	if !w.rooms.Contains(p.Body.Position) {
		if !unlocked {
			if id, ok := w.rooms.Find(origin); ok {
				expandFrom = id
			}
		}
		if r, ok := w.rooms.Get(expandFrom); ok {
			p.Body.Position = r.Area.Grow(-p.Body.Radius()).Clamp(p.Body.Position)
		}
	}

	w.logger.Debug("dash resolved",
		zap.Int("points", len(path)),
		zap.Float64("length", vmath.ToFloat(d.Length())),
		zap.Int("hits", hits),
		zap.Bool("unlocked", unlocked),
	)
}

// damageAround applies damage once to every live enemy within width/2 of any path segment
// Returns how many enemies were hit
func (w *World) damageAround(path []vmath.Vec2, width, damage int64, out *Output) int {
	w.hits.Clear()
	half := width / 2

	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		for j := range w.enemies {
			e := &w.enemies[j]
			if !e.Alive() || w.hits.Has(e.ID) {
				continue
			}
			if e.Body.SegmentDistance(a, b) > half {
				continue
			}
			w.hits.Add(e.ID)
			e.Health.Change(-damage)
			w.metrics.Inc(status.Hits)

			if e.Alive() {
				out.sound(event.SoundHit)
				out.burst(particle.KindDamage, e.Body.Position, parameter.ParticleRadius, parameter.ImpactParticleDensity)
				continue
			}
			out.sound(event.SoundKill)
			out.burst(particle.KindDamage, e.Body.Position, e.Body.Radius()+parameter.ParticleRadius, parameter.ImpactParticleDensity)
			w.metrics.Inc(status.Kills)
			w.logger.Debug("enemy killed", zap.Uint32("id", uint32(e.ID)), zap.String("name", e.Stats.Name))
		}
	}
	return w.hits.Len()
}
