// Package engine advances the arena simulation one fixed tick at a time
package engine

import (
	"time"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/component"
	"github.com/lixenwraith/dash-arena/config"
	"github.com/lixenwraith/dash-arena/room"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/vmath"
)

// World owns all simulation state
// Not safe for concurrent use: one goroutine calls Update, readers use Snapshot afterwards
type World struct {
	logger  *zap.Logger
	metrics *status.Registry
	rng     *vmath.FastRand

	rooms   *room.Graph
	player  component.Player
	enemies []component.Enemy
	nextID  component.EnemyID

	catalog      map[string]component.EnemyStats
	pool         []string
	spawnBase    int
	spawnPerRoom int

	// Per-stroke hit set, cleared at each dash
	hits *intmap.Set[component.EnemyID]

	time time.Duration
}

// New builds a world from validated configuration
// A nil logger disables logging, a nil registry allocates a private one
func New(cfg *config.Config, seed uint64, logger *zap.Logger, metrics *status.Registry) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	w := &World{
		logger:       logger,
		metrics:      metrics,
		rng:          vmath.NewFastRand(seed),
		rooms:        room.NewGraph(cfg.StartingArea(), cfg.WallThickness()),
		player:       component.NewPlayer(cfg.PlayerStats(), vmath.Vec2{}),
		catalog:      cfg.Catalog(),
		pool:         append([]string(nil), cfg.Spawn.Pool...),
		spawnBase:    cfg.Spawn.Base,
		spawnPerRoom: cfg.Spawn.PerRoom,
		hits:         intmap.NewSet[component.EnemyID](32),
	}
	w.publishGauges()

	logger.Info("world created",
		zap.Uint64("seed", seed),
		zap.Int("catalog", len(w.catalog)),
	)
	return w
}

// Metrics exposes the telemetry registry the world writes to
func (w *World) Metrics() *status.Registry { return w.metrics }

// Time is the accumulated simulation time
func (w *World) Time() time.Duration { return w.time }

// Dead reports whether the player's health is exhausted
func (w *World) Dead() bool { return !w.player.Health.IsAboveMin() }

// CanExpand is the global expansion gate: no live enemy other than bullets
func (w *World) CanExpand() bool {
	for i := range w.enemies {
		e := &w.enemies[i]
		if e.Alive() && !e.IsBullet() {
			return false
		}
	}
	return true
}

// SpawnEnemy places an enemy with the given stats and returns its id
func (w *World) SpawnEnemy(stats component.EnemyStats, position vmath.Vec2) component.EnemyID {
	w.nextID++
	w.enemies = append(w.enemies, component.NewEnemy(w.nextID, stats, position))
	w.metrics.Inc(status.Spawns)
	return w.nextID
}

// Update advances the simulation by dt
// Side effects for the renderer and audio are appended to out; nothing blocks
func (w *World) Update(in Controls, dt time.Duration, out *Output) {
	if dt <= 0 || w.Dead() {
		return
	}
	w.time += dt
	w.metrics.Inc(status.Ticks)
	dtF := vmath.FromDuration(dt)

	canExpand := w.CanExpand()
	w.updatePlayer(in, dt, dtF, out)
	w.updateCapture(in, canExpand, out)

	w.updateEnemies(dt, dtF)
	w.confineBodies(out)
	w.contactDamage(out)
	w.removeDead()

	w.publishGauges()
}

func (w *World) publishGauges() {
	w.metrics.Gauges.Get(status.Rooms).Set(float64(w.rooms.Len()))
	w.metrics.Gauges.Get(status.Enemies).Set(float64(len(w.enemies)))
	w.metrics.Gauges.Get(status.PlayerHealth).Set(vmath.ToFloat(w.player.Health.Current))
}
