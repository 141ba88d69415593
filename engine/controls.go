package engine

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/stroke"
	"github.com/lixenwraith/dash-arena/vmath"
)

// updatePlayer ticks invincibility and applies movement
// The body is frozen while a stroke is being captured
func (w *World) updatePlayer(in Controls, dt time.Duration, dtF int64, out *Output) {
	p := &w.player

	wasInvincible := p.Invincible()
	p.Invincibility.Change(-dt)
	if wasInvincible && !p.Invincible() {
		out.spawn(particle.Spawn(particle.KindShield, particle.Circle{
			Center: p.Body.Position,
			Radius: parameter.ShieldRadius,
		}))
	}

	if p.IsDrawing() {
		p.Body.Velocity = vmath.Vec2{}
	} else {
		target := in.MoveDir.ClampLen(vmath.Scale).Scale(p.Stats.Speed)
		p.Body.Accelerate(target, vmath.Mul(p.Stats.Acceleration, dtF))
	}
	p.Body.Integrate(dtF)
}

// updateCapture runs the stroke state machine: Idle -> Capturing on press, Capturing -> Idle on release
func (w *World) updateCapture(in Controls, canExpand bool, out *Output) {
	if in.Drawing == nil {
		w.stopDrawing(out)
		return
	}

	p := &w.player
	if p.Drawing == nil {
		p.Drawing = stroke.New(stroke.DrawPoint{Position: p.Body.Position, CapturedAt: w.time})
		w.metrics.Inc(status.Strokes)
		w.logger.Debug("stroke started", zap.Float64("x", vmath.ToFloat(p.Body.Position.X)), zap.Float64("y", vmath.ToFloat(p.Body.Position.Y)))
	}

	candidate := *in.Drawing
	if w.acceptsPoint(candidate, canExpand) {
		if p.Drawing.Extend(candidate, w.time, p.Stats.Dash.MaxDistance) {
			w.metrics.Inc(status.StrokePoints)
		}
	}

	out.spawn(particle.Spawn(particle.KindDraw, particle.Ribbon{
		Points: slices.Clone(p.Drawing.Smoothed()),
		Width:  parameter.DrawRibbonWidth,
	}).WithDensity(parameter.DrawParticleDensity))
	out.sound(event.SoundDrawing)
}

// acceptsPoint admits a candidate inside explored space, or outside it when the
// room the player stands in may still be unlocked toward the candidate
func (w *World) acceptsPoint(candidate vmath.Vec2, canExpand bool) bool {
	if w.rooms.Contains(candidate) {
		return true
	}
	if !canExpand {
		return false
	}
	src, ok := w.rooms.Find(w.player.Body.Position)
	if !ok {
		return false
	}
	_, eligible := w.rooms.EligibleToward(src, candidate)
	return eligible
}

// stopDrawing ends an active stroke and resolves it into a dash
func (w *World) stopDrawing(out *Output) {
	d := w.player.Drawing
	if d == nil {
		return
	}
	w.player.Drawing = nil
	w.resolveDash(d, out)
}
