// Package particle describes particle spawn requests and samples their positions
package particle

import (
	"time"

	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/vmath"
)

// Distribution is the region particles are scattered over
// Closed set: Circle, Ribbon, Area
type Distribution interface {
	distribution()
}

// Circle scatters uniformly within a disk
type Circle struct {
	Center vmath.Vec2
	Radius int64
}

// Ribbon scatters along a polyline, jittered sideways by up to Width
type Ribbon struct {
	Points []vmath.Vec2
	Width  int64
}

// Area scatters uniformly within a rectangle
type Area struct {
	Rect vmath.Rect
}

func (Circle) distribution() {}
func (Ribbon) distribution() {}
func (Area) distribution()   {}

// SpawnParticles is an output request for the renderer's particle system
// Never stored by the simulation
type SpawnParticles struct {
	Kind         Kind
	Density      int64 // Expected count per unit measure (Q32.32)
	Distribution Distribution
	SizeMin      int64
	SizeMax      int64
	Velocity     vmath.Vec2
	LifetimeMin  time.Duration
	LifetimeMax  time.Duration
}

// Spawn builds a request with default density, size and lifetime
func Spawn(kind Kind, dist Distribution) SpawnParticles {
	return SpawnParticles{
		Kind:         kind,
		Density:      parameter.ParticleDensity,
		Distribution: dist,
		SizeMin:      parameter.ParticleSizeMin,
		SizeMax:      parameter.ParticleSizeMax,
		LifetimeMin:  parameter.ParticleLifetimeMin,
		LifetimeMax:  parameter.ParticleLifetimeMax,
	}
}

// WithDensity returns a copy with density replaced
func (s SpawnParticles) WithDensity(density int64) SpawnParticles {
	s.Density = density
	return s
}

// Sample realizes the request's positions
func (s SpawnParticles) Sample(rng *vmath.FastRand) []vmath.Vec2 {
	return Sample(s.Distribution, s.Density, rng)
}
