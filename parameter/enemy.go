package parameter

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// Spawning
const (
	// SpawnMarginFloat keeps spawns away from the new room's walls
	SpawnMarginFloat = 1.0

	// SpawnClearanceFloat is the minimum spawn distance from the player
	SpawnClearanceFloat = 2.5

	// SpawnAttempts bounds rejection sampling before accepting any position
	SpawnAttempts = 8
)

// Behavior
const (
	// ShooterRetreatRatio is the fraction of preferred distance below which shooters back off
	ShooterRetreatRatioFloat = 0.8

	// PacmanPowerDuration is how long a powered pacman chases
	PacmanPowerDuration = 5 * time.Second

	// PacmanArriveFloat is the distance at which a wander target counts as reached
	PacmanArriveFloat = 0.5

	// PacmanWanderRangeFloat bounds wander target offsets
	PacmanWanderRangeFloat = 4.0

	// HelicopterArriveFloat is the distance at which a strafe ends
	HelicopterArriveFloat = 0.5
)

var (
	SpawnMargin         = vmath.FromFloat(SpawnMarginFloat)
	SpawnClearance      = vmath.FromFloat(SpawnClearanceFloat)
	ShooterRetreatRatio = vmath.FromFloat(ShooterRetreatRatioFloat)
	PacmanArrive        = vmath.FromFloat(PacmanArriveFloat)
	PacmanWanderRange   = vmath.FromFloat(PacmanWanderRangeFloat)
	HelicopterArrive    = vmath.FromFloat(HelicopterArriveFloat)
)
