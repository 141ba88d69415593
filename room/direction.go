package room

import "github.com/lixenwraith/dash-arena/vmath"

// Direction names a room side; +Y is Up
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
	Up
)

// Directions lists every side in declaration order
var Directions = [4]Direction{Left, Right, Down, Up}

// Opposite is an involution: d.Opposite().Opposite() == d
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Down
	}
}

// Unit returns the outward unit vector of the side
func (d Direction) Unit() vmath.Vec2 {
	switch d {
	case Left:
		return vmath.V(-vmath.Scale, 0)
	case Right:
		return vmath.V(vmath.Scale, 0)
	case Down:
		return vmath.V(0, -vmath.Scale)
	default:
		return vmath.V(0, vmath.Scale)
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Up:
		return "Up"
	}
	return "Unknown"
}
