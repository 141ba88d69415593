package component

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// AI is the behavior variant of an enemy, closed set:
// Idle, Bullet, Crawler, Shooter, Pacman, Helicopter
// Stateful variants are pointers so the engine can advance their timers in place
type AI interface {
	aiKind() string
}

// Idle never moves
type Idle struct{}

// Bullet flies with its spawn velocity and dies on contact
type Bullet struct{}

// Crawler seeks the player
type Crawler struct{}

// Shooter keeps its distance and fires bullets whenever Charge fills
type Shooter struct {
	PreferredDistance int64
	Charge            Timer
	Bullet            string // Catalog name of the projectile
}

// PacmanState is Normal or Power
type PacmanState interface {
	pacmanState()
}

// PacmanNormal wanders toward Target and grants a 1-up when Spawn1Up drains
type PacmanNormal struct {
	Spawn1Up Timer
	Target   *vmath.Vec2
}

// PacmanPower chases the player at SpeedPower until Timer drains
type PacmanPower struct {
	Timer Timer
}

func (*PacmanNormal) pacmanState() {}
func (*PacmanPower) pacmanState()  {}

type Pacman struct {
	State      PacmanState
	SpeedPower int64
}

// HelicopterState is the current helicopter phase
type HelicopterState uint8

const (
	HelicopterIdle HelicopterState = iota
	HelicopterMoving
)

// Helicopter oscillates between hovering and strafing
type Helicopter struct {
	Oscillate Timer
	State     HelicopterState
	Target    vmath.Vec2
}

func (*Idle) aiKind() string       { return "Idle" }
func (*Bullet) aiKind() string     { return "Bullet" }
func (*Crawler) aiKind() string    { return "Crawler" }
func (*Shooter) aiKind() string    { return "Shooter" }
func (*Pacman) aiKind() string     { return "Pacman" }
func (*Helicopter) aiKind() string { return "Helicopter" }

// AIKind names the variant for logging and rendering
func AIKind(ai AI) string {
	if ai == nil {
		return "None"
	}
	return ai.aiKind()
}

// DefaultPacman matches the stock pacman tuning
func DefaultPacman() *Pacman {
	return &Pacman{
		State:      &PacmanNormal{Spawn1Up: NewMax(5 * time.Second)},
		SpeedPower: vmath.FromInt(9),
	}
}

// DefaultHelicopter matches the stock helicopter tuning
func DefaultHelicopter() *Helicopter {
	return &Helicopter{Oscillate: NewZero(7 * time.Second)}
}

// CloneAI deep-copies stateful variants so enemies never share timers
func CloneAI(ai AI) AI {
	switch a := ai.(type) {
	case *Idle:
		return &Idle{}
	case *Bullet:
		return &Bullet{}
	case *Crawler:
		return &Crawler{}
	case *Shooter:
		c := *a
		return &c
	case *Pacman:
		c := *a
		switch s := a.State.(type) {
		case *PacmanNormal:
			n := *s
			if s.Target != nil {
				t := *s.Target
				n.Target = &t
			}
			c.State = &n
		case *PacmanPower:
			p := *s
			c.State = &p
		}
		return &c
	case *Helicopter:
		c := *a
		return &c
	}
	return &Idle{}
}
