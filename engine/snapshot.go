package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/room"
	"github.com/lixenwraith/dash-arena/vmath"
)

// PlayerView is the read-only player state for rendering
type PlayerView struct {
	Collider      component.Collider
	Velocity      vmath.Vec2
	Health        component.Health
	Invincibility component.Timer
	Drawing       []vmath.Vec2 // Smoothed stroke, nil when idle
	DashRemaining int64        // Stroke budget left, full budget when idle
}

// EnemyView is the read-only enemy state for rendering
type EnemyView struct {
	ID       component.EnemyID
	Name     string
	Kind     string
	Collider component.Collider
	Health   component.Health
}

// Snapshot is a deep copy of the world taken between ticks
type Snapshot struct {
	Time      time.Duration
	Player    PlayerView
	Rooms     []room.Room
	Walls     []room.Wall
	Enemies   []EnemyView
	CanExpand bool
}

// Snapshot copies the state the renderer needs; later ticks never mutate it
func (w *World) Snapshot() Snapshot {
	p := &w.player
	pv := PlayerView{
		Collider:      p.Body.Collider,
		Velocity:      p.Body.Velocity,
		Health:        p.Health,
		Invincibility: p.Invincibility,
		DashRemaining: p.Stats.Dash.MaxDistance,
	}
	if p.Drawing != nil {
		pv.Drawing = slices.Clone(p.Drawing.Smoothed())
		pv.DashRemaining = max(0, p.Drawing.Remaining(p.Stats.Dash.MaxDistance))
	}

	enemies := make([]EnemyView, 0, len(w.enemies))
	for i := range w.enemies {
		e := &w.enemies[i]
		enemies = append(enemies, EnemyView{
			ID:       e.ID,
			Name:     e.Stats.Name,
			Kind:     component.AIKind(e.AI),
			Collider: e.Body.Collider,
			Health:   e.Health,
		})
	}

	return Snapshot{
		Time:      w.time,
		Player:    pv,
		Rooms:     w.rooms.Rooms(),
		Walls:     w.rooms.Walls(),
		Enemies:   enemies,
		CanExpand: w.CanExpand(),
	}
}
