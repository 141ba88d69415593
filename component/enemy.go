package component

import (
	"github.com/lixenwraith/dash-arena/vmath"
)

// EnemyID is stable for the lifetime of one enemy, never reused within a world
type EnemyID uint32

// Enemy is a damage target driven by its AI variant
type Enemy struct {
	ID     EnemyID
	Health Health
	Body   Body
	Stats  EnemyStats
	AI     AI
}

// NewEnemy spawns an enemy at full health with its own copy of the configured AI state
func NewEnemy(id EnemyID, stats EnemyStats, position vmath.Vec2) Enemy {
	return Enemy{
		ID:     id,
		Health: NewMax(stats.Health),
		Body:   NewBody(position, stats.Shape),
		Stats:  stats,
		AI:     CloneAI(stats.AI),
	}
}

// Alive reports whether health is above its floor
func (e *Enemy) Alive() bool {
	return e.Health.IsAboveMin()
}

// IsBullet reports whether the enemy is a projectile, which never blocks expansion
func (e *Enemy) IsBullet() bool {
	_, ok := e.AI.(*Bullet)
	return ok
}
