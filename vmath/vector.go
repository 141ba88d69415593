package vmath

// Vec2 is a world-space position or direction in Q32.32
type Vec2 struct {
	X, Y int64
}

// V builds a vector from Q32.32 components
func V(x, y int64) Vec2 { return Vec2{X: x, Y: y} }

// VF builds a vector from float components, used at config and input boundaries
func VF(x, y float64) Vec2 { return Vec2{X: FromFloat(x), Y: FromFloat(y)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{-v.X, -v.Y} }
func (v Vec2) IsZero() bool    { return v.X == 0 && v.Y == 0 }

// Scale multiplies both components by a Q32.32 factor
func (v Vec2) Scale(f int64) Vec2 { return Vec2{Mul(v.X, f), Mul(v.Y, f)} }

// Dot returns x1*x2 + y1*y2 in Q32.32
func (v Vec2) Dot(o Vec2) int64 { return Mul(v.X, o.X) + Mul(v.Y, o.Y) }

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() int64 { return Mul(v.X, v.X) + Mul(v.Y, v.Y) }

// Len returns Euclidean length
func (v Vec2) Len() int64 { return Sqrt(v.LenSq()) }

// DistSq returns squared distance between two points
func (v Vec2) DistSq(o Vec2) int64 { return o.Sub(v).LenSq() }

// Normalize returns unit vector, zero vector for zero-length input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{Div(v.X, l), Div(v.Y, l)}
}

// ClampLen limits vector to maxLen while preserving direction
func (v Vec2) ClampLen(maxLen int64) Vec2 {
	if maxLen <= 0 {
		return Vec2{}
	}
	l := v.Len()
	if l <= maxLen {
		return v
	}
	return v.Normalize().Scale(maxLen)
}

// Perp returns vector rotated 90° counter-clockwise
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Lerp interpolates between v and o with t in [0, Scale]
func (v Vec2) Lerp(o Vec2, t int64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Float returns float components for presentation layers
func (v Vec2) Float() (float64, float64) { return ToFloat(v.X), ToFloat(v.Y) }
