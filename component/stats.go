package component

import (
	"time"
)

// DashStats shape the dash resolved from a finished stroke
type DashStats struct {
	MaxDistance int64 // Stroke length budget
	Speed       int64 // Exit velocity magnitude
	Width       int64 // Sweep width, entities within Width/2 of the path are hit
	Damage      int64
}

// PlayerStats are the configured player constants, all lengths in Q32.32
type PlayerStats struct {
	Health        int64
	Speed         int64
	Acceleration  int64
	Radius        int64
	Invincibility time.Duration
	Dash          DashStats
}

// EnemyStats are the configured constants of one enemy kind
type EnemyStats struct {
	Name         string
	Health       int64
	Damage       int64
	Speed        int64
	Acceleration int64
	Shape        Shape
	AI           AI
}
