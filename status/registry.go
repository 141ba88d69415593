package status

import (
	"strconv"
	"sync/atomic"
)

// Metric names written by the engine
const (
	Ticks        = "sim.ticks"
	Strokes      = "stroke.count"
	StrokePoints = "stroke.points"
	Dashes       = "dash.count"
	Hits         = "dash.hits"
	Kills        = "enemy.kills"
	Spawns       = "enemy.spawns"
	Expansions   = "room.expansions"
	HitsTaken    = "player.hits_taken"
	Rooms        = "room.count"
	Enemies      = "enemy.alive"
	PlayerHealth = "player.health"
)

// Registry holds monotonic counters and point-in-time gauges
// The simulation writes, the frontend reads concurrently
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Inc bumps a counter by one
func (r *Registry) Inc(key string) {
	r.Counters.Get(key).Add(1)
}

// Count reads a counter
func (r *Registry) Count(key string) int64 {
	return r.Counters.Get(key).Load()
}

// Sample is one rendered metric line
type Sample struct {
	Key   string
	Value string
}

// Snapshot renders every metric, counters first, each group sorted by key
func (r *Registry) Snapshot() []Sample {
	out := make([]Sample, 0, r.Counters.Len()+r.Gauges.Len())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		out = append(out, Sample{Key: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Gauges.Range(func(key string, g *Gauge) {
		out = append(out, Sample{Key: key, Value: strconv.FormatFloat(g.Get(), 'f', 1, 64)})
	})
	return out
}
