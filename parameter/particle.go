package parameter

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// Spawn Defaults
const (
	// ParticleDensityFloat is the default expected count per unit measure
	ParticleDensityFloat = 5.0

	// ParticleRadiusFloat is the default circle distribution radius
	ParticleRadiusFloat = 0.5

	// ParticleSizeMinFloat/MaxFloat bound individual particle size
	ParticleSizeMinFloat = 0.05
	ParticleSizeMaxFloat = 0.15

	// ParticleLifetimeMin/Max bound individual particle lifetime
	ParticleLifetimeMin = 500 * time.Millisecond
	ParticleLifetimeMax = 1500 * time.Millisecond
)

// Effect Shapes
const (
	// ShieldRadiusFloat is the circle emitted when invincibility ends
	ShieldRadiusFloat = 0.6

	// ExpandParticleDensityFloat is the density over a freshly unlocked room
	ExpandParticleDensityFloat = 0.5

	// ImpactParticleDensityFloat is the density of damage/hit bursts
	ImpactParticleDensityFloat = 10.0
)

// Fixed-point forms
var (
	ParticleDensity       = vmath.FromFloat(ParticleDensityFloat)
	ParticleRadius        = vmath.FromFloat(ParticleRadiusFloat)
	ParticleSizeMin       = vmath.FromFloat(ParticleSizeMinFloat)
	ParticleSizeMax       = vmath.FromFloat(ParticleSizeMaxFloat)
	ShieldRadius          = vmath.FromFloat(ShieldRadiusFloat)
	ExpandParticleDensity = vmath.FromFloat(ExpandParticleDensityFloat)
	ImpactParticleDensity = vmath.FromFloat(ImpactParticleDensityFloat)
)
