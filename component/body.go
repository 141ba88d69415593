package component

import (
	"github.com/lixenwraith/dash-arena/stroke"
	"github.com/lixenwraith/dash-arena/vmath"
)

// Body is a moving collider
type Body struct {
	Collider
	Velocity vmath.Vec2
}

// NewBody places a shape at rest
func NewBody(position vmath.Vec2, shape Shape) Body {
	return Body{Collider: Collider{Position: position, Shape: shape}}
}

// Integrate advances position by velocity over dt (Q32.32 seconds)
func (b *Body) Integrate(dt int64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Accelerate eases velocity toward target by at most maxDelta
func (b *Body) Accelerate(target vmath.Vec2, maxDelta int64) {
	b.Velocity = b.Velocity.Add(target.Sub(b.Velocity).ClampLen(maxDelta))
}

// Player is the controlled entity
// Drawing is non-nil only while a stroke is being captured
type Player struct {
	Health        Health
	Body          Body
	Stats         PlayerStats
	Invincibility Timer
	Drawing       *stroke.Drawing
}

// NewPlayer spawns a player at rest with full health and no invincibility
func NewPlayer(stats PlayerStats, position vmath.Vec2) Player {
	return Player{
		Health:        NewMax(stats.Health),
		Body:          NewBody(position, Circle{Radius: stats.Radius}),
		Stats:         stats,
		Invincibility: NewZero(stats.Invincibility),
	}
}

// Invincible reports whether the damage window is active
func (p *Player) Invincible() bool {
	return p.Invincibility.IsAboveMin()
}

// IsDrawing reports whether a stroke is in progress
func (p *Player) IsDrawing() bool {
	return p.Drawing != nil
}
