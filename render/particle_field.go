package render

import (
	"time"

	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/vmath"
)

// Particle is one live visual particle
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Kind     particle.Kind
	Size     int64
	Age      time.Duration
	Lifetime time.Duration
}

// Life returns the remaining fraction of lifetime in Q32.32
func (p *Particle) Life() int64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return vmath.MulDiv(int64(p.Lifetime-p.Age), vmath.Scale, int64(p.Lifetime))
}

// ParticleField realizes spawn requests into aging particles
// Bounded: at capacity the oldest particles are replaced
type ParticleField struct {
	items    []Particle
	capacity int
	rng      *vmath.FastRand
}

func NewParticleField(capacity int, seed uint64) *ParticleField {
	return &ParticleField{
		items:    make([]Particle, 0, capacity),
		capacity: capacity,
		rng:      vmath.NewFastRand(seed),
	}
}

// Spawn samples a request's distribution into live particles
func (f *ParticleField) Spawn(req particle.SpawnParticles) int {
	positions := req.Sample(f.rng)
	for _, pos := range positions {
		lifetime := time.Duration(f.rng.Range(int64(req.LifetimeMin), int64(req.LifetimeMax)+1))
		if req.LifetimeMax <= req.LifetimeMin {
			lifetime = req.LifetimeMin
		}
		p := Particle{
			Position: pos,
			Velocity: req.Velocity,
			Kind:     req.Kind,
			Size:     f.rng.Range(req.SizeMin, req.SizeMax),
			Lifetime: lifetime,
		}
		if len(f.items) < f.capacity {
			f.items = append(f.items, p)
			continue
		}
		// Replace the oldest
		oldest := 0
		for i := range f.items {
			if f.items[i].Age > f.items[oldest].Age {
				oldest = i
			}
		}
		f.items[oldest] = p
	}
	return len(positions)
}

// Update ages and moves particles, dropping expired ones
func (f *ParticleField) Update(dt time.Duration) {
	dtF := vmath.FromDuration(dt)
	live := f.items[:0]
	for _, p := range f.items {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dtF))
		live = append(live, p)
	}
	f.items = live
}

// Particles returns the live particles; callers must not retain the slice across Update
func (f *ParticleField) Particles() []Particle { return f.items }

func (f *ParticleField) Len() int { return len(f.items) }
