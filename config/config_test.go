package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/vmath"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	area := cfg.StartingArea()
	assert.Equal(t, vmath.FromInt(-5), area.Min.X)
	assert.Equal(t, vmath.FromInt(5), area.Max.Y)

	ps := cfg.PlayerStats()
	assert.Equal(t, vmath.FromInt(20), ps.Dash.MaxDistance)
	assert.Equal(t, time.Second, ps.Invincibility)
	assert.Equal(t, vmath.FromFloat(0.5), ps.Radius)
}

func TestEnemyStatsConversion(t *testing.T) {
	cfg := Default()

	shooter, ok := cfg.EnemyStats("shooter")
	require.True(t, ok)
	ai, ok := shooter.AI.(*component.Shooter)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, ai.Charge.Max)
	assert.Equal(t, "bullet", ai.Bullet)
	assert.IsType(t, component.Box{}, shooter.Shape)

	crawler, ok := cfg.EnemyStats("crawler")
	require.True(t, ok)
	assert.Equal(t, component.Circle{Radius: vmath.FromFloat(0.4)}, crawler.Shape)

	_, ok = cfg.EnemyStats("dragon")
	assert.False(t, ok)

	assert.Len(t, cfg.Catalog(), len(cfg.Enemies))
}

func TestParseRejects(t *testing.T) {
	base := `
[arena]
width = 10.0
height = 10.0
wall_thickness = 0.2

[player]
health = 100.0
speed = 10.0
acceleration = 50.0
radius = 0.5
invincibility = "1s"

[player.dash]
max_distance = 20.0
speed = 40.0
width = 1.0
damage = 10.0
`
	tests := []struct {
		name    string
		extra   string
		wantErr error
	}{
		{"unknown key", "\n[arena.extra]\nfoo = 1\n", ErrUnknownKey},
		{"pool references missing enemy", "\n[spawn]\nbase = 1\npool = [\"ghost\"]\n", ErrUnknownEnemy},
		{"empty pool with spawns", "\n[spawn]\nbase = 2\n", ErrInvalidValue},
		{"bad ai", "\n[enemies.x]\nhealth = 1.0\nradius = 1.0\nai = \"dragon\"\n", ErrUnknownAI},
		{"shapeless enemy", "\n[enemies.x]\nhealth = 1.0\nai = \"idle\"\n", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(base + tt.extra)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	cfg, err := Parse(base)
	require.NoError(t, err, "no spawns and no catalog is valid")
	assert.Empty(t, cfg.Enemies)
}

func TestParseNegativeArena(t *testing.T) {
	_, err := Parse("[arena]\nwidth = -1.0\nheight = 10.0\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[arena]
width = 20.0
height = 8.0
[player]
health = 50.0
radius = 0.5
invincibility = "1500ms"
[player.dash]
max_distance = 12.0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Arena.Width)
	assert.Equal(t, 1500*time.Millisecond, cfg.Player.Invincibility)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
