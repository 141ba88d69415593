package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
	ErrUnknownEnemy = errors.New("unknown enemy")
	ErrUnknownAI    = errors.New("unknown ai")
)

// aiNames lists the accepted ai values
var aiNames = map[string]bool{
	"idle":       true,
	"bullet":     true,
	"crawler":    true,
	"shooter":    true,
	"pacman":     true,
	"helicopter": true,
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidValue, name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidValue, name, v)
	}
	return nil
}

// Validate checks ranges and catalog references, returning all problems joined
func (c *Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(positive("arena.width", c.Arena.Width))
	add(positive("arena.height", c.Arena.Height))
	add(nonNegative("arena.wall_thickness", c.Arena.WallThickness))

	add(positive("player.health", c.Player.Health))
	add(nonNegative("player.speed", c.Player.Speed))
	add(nonNegative("player.acceleration", c.Player.Acceleration))
	add(positive("player.radius", c.Player.Radius))
	add(nonNegative("player.invincibility", c.Player.Invincibility.Seconds()))
	add(positive("player.dash.max_distance", c.Player.Dash.MaxDistance))
	add(nonNegative("player.dash.speed", c.Player.Dash.Speed))
	add(nonNegative("player.dash.width", c.Player.Dash.Width))
	add(nonNegative("player.dash.damage", c.Player.Dash.Damage))

	if c.Spawn.Base < 0 || c.Spawn.PerRoom < 0 {
		add(fmt.Errorf("%w: spawn counts must not be negative", ErrInvalidValue))
	}
	if c.Spawn.Base+c.Spawn.PerRoom > 0 && len(c.Spawn.Pool) == 0 {
		add(fmt.Errorf("%w: spawn.pool is empty", ErrInvalidValue))
	}
	for _, name := range c.Spawn.Pool {
		if _, ok := c.Enemies[name]; !ok {
			add(fmt.Errorf("%w: spawn.pool references %q", ErrUnknownEnemy, name))
		}
	}

	for name, e := range c.Enemies {
		prefix := "enemies." + name
		add(positive(prefix+".health", e.Health))
		add(nonNegative(prefix+".damage", e.Damage))
		add(nonNegative(prefix+".speed", e.Speed))
		add(nonNegative(prefix+".acceleration", e.Acceleration))
		if e.Radius <= 0 && (e.Width <= 0 || e.Height <= 0) {
			add(fmt.Errorf("%w: %s needs radius or width and height", ErrInvalidValue, prefix))
		}
		if !aiNames[e.AI] {
			add(fmt.Errorf("%w: %s.ai = %q", ErrUnknownAI, prefix, e.AI))
		}
		if e.AI == "shooter" {
			if _, ok := c.Enemies[e.Bullet]; !ok {
				add(fmt.Errorf("%w: %s.bullet references %q", ErrUnknownEnemy, prefix, e.Bullet))
			}
			add(positive(prefix+".charge", e.Charge.Seconds()))
		}
	}

	return errors.Join(errs...)
}
