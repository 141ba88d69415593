package config

import (
	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/vmath"
)

// StartingArea is the root room centered at the origin
func (c *Config) StartingArea() vmath.Rect {
	return vmath.RectCentered(vmath.Vec2{},
		vmath.FromFloat(c.Arena.Width/2),
		vmath.FromFloat(c.Arena.Height/2),
	)
}

func (c *Config) WallThickness() int64 {
	return vmath.FromFloat(c.Arena.WallThickness)
}

// PlayerStats converts player tuning to fixed point
func (c *Config) PlayerStats() component.PlayerStats {
	p := c.Player
	return component.PlayerStats{
		Health:        vmath.FromFloat(p.Health),
		Speed:         vmath.FromFloat(p.Speed),
		Acceleration:  vmath.FromFloat(p.Acceleration),
		Radius:        vmath.FromFloat(p.Radius),
		Invincibility: p.Invincibility,
		Dash: component.DashStats{
			MaxDistance: vmath.FromFloat(p.Dash.MaxDistance),
			Speed:       vmath.FromFloat(p.Dash.Speed),
			Width:       vmath.FromFloat(p.Dash.Width),
			Damage:      vmath.FromFloat(p.Dash.Damage),
		},
	}
}

// EnemyStats converts one catalog entry, ok is false for unknown names
func (c *Config) EnemyStats(name string) (component.EnemyStats, bool) {
	e, ok := c.Enemies[name]
	if !ok {
		return component.EnemyStats{}, false
	}

	var shape component.Shape = component.Circle{Radius: vmath.FromFloat(e.Radius)}
	if e.Radius <= 0 {
		shape = component.Box{Width: vmath.FromFloat(e.Width), Height: vmath.FromFloat(e.Height)}
	}

	return component.EnemyStats{
		Name:         name,
		Health:       vmath.FromFloat(e.Health),
		Damage:       vmath.FromFloat(e.Damage),
		Speed:        vmath.FromFloat(e.Speed),
		Acceleration: vmath.FromFloat(e.Acceleration),
		Shape:        shape,
		AI:           e.ai(),
	}, true
}

func (e EnemyConfig) ai() component.AI {
	switch e.AI {
	case "bullet":
		return &component.Bullet{}
	case "crawler":
		return &component.Crawler{}
	case "shooter":
		return &component.Shooter{
			PreferredDistance: vmath.FromFloat(e.PreferredDistance),
			Charge:            component.NewZero(e.Charge),
			Bullet:            e.Bullet,
		}
	case "pacman":
		return component.DefaultPacman()
	case "helicopter":
		return component.DefaultHelicopter()
	}
	return &component.Idle{}
}

// Catalog converts every enemy entry
func (c *Config) Catalog() map[string]component.EnemyStats {
	out := make(map[string]component.EnemyStats, len(c.Enemies))
	for name := range c.Enemies {
		out[name], _ = c.EnemyStats(name)
	}
	return out
}
