package engine

import (
	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/vmath"
)

// Controls is the per-tick player input
// Drawing is the world-space cursor while the draw button is held, nil otherwise
type Controls struct {
	MoveDir vmath.Vec2
	Drawing *vmath.Vec2
}

// Output is the caller-owned per-tick sink, drained by the consumer once per tick
type Output struct {
	Particles *event.Queue[particle.SpawnParticles]
	Events    *event.Queue[event.Event]
}

func NewOutput() *Output {
	return &Output{
		Particles: event.NewQueue[particle.SpawnParticles](parameter.ParticleQueueSize),
		Events:    event.NewQueue[event.Event](parameter.EventQueueSize),
	}
}

func (o *Output) spawn(s particle.SpawnParticles) {
	if o == nil {
		return
	}
	o.Particles.Push(s)
}

func (o *Output) sound(s event.Sound) {
	if o == nil {
		return
	}
	o.Events.Push(event.PlaySound(s))
}

// burst emits a default circle of kind at center
func (o *Output) burst(kind particle.Kind, center vmath.Vec2, radius, density int64) {
	o.spawn(particle.Spawn(kind, particle.Circle{Center: center, Radius: radius}).WithDensity(density))
}
