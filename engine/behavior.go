package engine

import (
	"time"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/vmath"
)

// updateEnemies steers every live enemy by its AI variant and integrates motion
// Bullets fired this tick are appended after the loop
func (w *World) updateEnemies(dt time.Duration, dtF int64) {
	var fired []component.Enemy
	target := w.player.Body.Position

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive() {
			continue
		}

		switch ai := e.AI.(type) {
		case *component.Bullet:
			// Ballistic, keeps spawn velocity
		case *component.Crawler:
			w.seek(e, target, e.Stats.Speed, dtF)
		case *component.Shooter:
			if b, ok := w.updateShooter(e, ai, target, dt, dtF); ok {
				fired = append(fired, b)
			}
		case *component.Pacman:
			w.updatePacman(e, ai, target, dt, dtF)
		case *component.Helicopter:
			w.updateHelicopter(e, ai, target, dt, dtF)
		default:
			w.seek(e, e.Body.Position, 0, dtF)
		}
		e.Body.Integrate(dtF)
	}

	for _, b := range fired {
		w.SpawnEnemy(b.Stats, b.Body.Position)
		w.enemies[len(w.enemies)-1].Body.Velocity = b.Body.Velocity
	}
}

// seek eases velocity toward target at speed, bounded by the enemy's acceleration
func (w *World) seek(e *component.Enemy, target vmath.Vec2, speed, dtF int64) {
	want := target.Sub(e.Body.Position).Normalize().Scale(speed)
	e.Body.Accelerate(want, vmath.Mul(e.Stats.Acceleration, dtF))
}

// updateShooter holds preferred distance and fires when charged
func (w *World) updateShooter(e *component.Enemy, ai *component.Shooter, target vmath.Vec2, dt time.Duration, dtF int64) (component.Enemy, bool) {
	dist := target.Sub(e.Body.Position).Len()
	switch {
	case dist > ai.PreferredDistance:
		w.seek(e, target, e.Stats.Speed, dtF)
	case dist < vmath.Mul(ai.PreferredDistance, parameter.ShooterRetreatRatio):
		away := e.Body.Position.Add(e.Body.Position.Sub(target))
		w.seek(e, away, e.Stats.Speed, dtF)
	default:
		w.seek(e, e.Body.Position, 0, dtF)
	}

	ai.Charge.Change(dt)
	if !ai.Charge.IsMax() {
		return component.Enemy{}, false
	}
	ai.Charge.Set(0)

	stats, ok := w.catalog[ai.Bullet]
	if !ok {
		return component.Enemy{}, false
	}
	b := component.NewEnemy(0, stats, e.Body.Position)
	b.Body.Velocity = target.Sub(e.Body.Position).Normalize().Scale(stats.Speed)
	return b, true
}

// updatePacman wanders while Normal and chases at power speed while Power
func (w *World) updatePacman(e *component.Enemy, ai *component.Pacman, target vmath.Vec2, dt time.Duration, dtF int64) {
	switch s := ai.State.(type) {
	case *component.PacmanNormal:
		if s.Target == nil || e.Body.Position.DistSq(*s.Target) < vmath.Mul(parameter.PacmanArrive, parameter.PacmanArrive) {
			next := e.Body.Position.Add(vmath.V(
				w.rng.Range(-parameter.PacmanWanderRange, parameter.PacmanWanderRange),
				w.rng.Range(-parameter.PacmanWanderRange, parameter.PacmanWanderRange),
			))
			s.Target = &next
		}
		w.seek(e, *s.Target, e.Stats.Speed, dtF)

		s.Spawn1Up.Change(-dt)
		if !s.Spawn1Up.IsAboveMin() {
			ai.State = &component.PacmanPower{Timer: component.NewMax(parameter.PacmanPowerDuration)}
		}
	case *component.PacmanPower:
		w.seek(e, target, ai.SpeedPower, dtF)

		s.Timer.Change(-dt)
		if !s.Timer.IsAboveMin() {
			ai.State = component.DefaultPacman().State
		}
	}
}

// updateHelicopter hovers, then strafes to where the player was when the oscillation filled
func (w *World) updateHelicopter(e *component.Enemy, ai *component.Helicopter, target vmath.Vec2, dt time.Duration, dtF int64) {
	ai.Oscillate.Change(dt)
	if ai.Oscillate.IsMax() {
		ai.Oscillate.Set(0)
		if ai.State == component.HelicopterIdle {
			ai.State = component.HelicopterMoving
			ai.Target = target
		} else {
			ai.State = component.HelicopterIdle
		}
	}

	switch ai.State {
	case component.HelicopterMoving:
		w.seek(e, ai.Target, e.Stats.Speed, dtF)
		if e.Body.Position.DistSq(ai.Target) < vmath.Mul(parameter.HelicopterArrive, parameter.HelicopterArrive) {
			ai.State = component.HelicopterIdle
		}
	default:
		w.seek(e, e.Body.Position, 0, dtF)
	}
}
