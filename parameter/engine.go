package parameter

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// Simulation Loop
const (
	// TickInterval is the fixed simulation timestep (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval
	FrameUpdateInterval = 16 * time.Millisecond

	// InputChannelSize buffers terminal events between the poll goroutine and the loop
	InputChannelSize = 100
)

// Output Queues
const (
	// EventQueueSize is the fixed capacity of the per-tick sound event ring
	EventQueueSize = 256

	// ParticleQueueSize is the fixed capacity of the per-tick particle request ring
	ParticleQueueSize = 256
)

// Geometry
const (
	// WallThicknessFloat is the depth of a room wall collider (units)
	WallThicknessFloat = 0.2

	// CameraFOVFloat is the vertical world extent shown on screen (units)
	CameraFOVFloat = 30.0
)

var (
	WallThickness = vmath.FromFloat(WallThicknessFloat)
	CameraFOV     = vmath.FromFloat(CameraFOVFloat)
)
