package component

import (
	"time"

	"github.com/lixenwraith/dash-arena/vmath"
)

// Bounded is a value clamped to [0, Max]
// Used for fixed-point health and duration countdowns
type Bounded[T ~int64] struct {
	Current T
	Max     T
}

// NewMax creates a bounded value starting full
func NewMax[T ~int64](max T) Bounded[T] {
	return Bounded[T]{Current: max, Max: max}
}

// NewZero creates a bounded value starting empty
func NewZero[T ~int64](max T) Bounded[T] {
	return Bounded[T]{Max: max}
}

// Change adds delta and clamps
func (b *Bounded[T]) Change(delta T) {
	b.Set(b.Current + delta)
}

// Set assigns v clamped to [0, Max]
func (b *Bounded[T]) Set(v T) {
	switch {
	case v < 0:
		b.Current = 0
	case v > b.Max:
		b.Current = b.Max
	default:
		b.Current = v
	}
}

// SetRatio assigns a Q32.32 fraction of Max
func (b *Bounded[T]) SetRatio(ratio int64) {
	b.Set(T(vmath.Mul(int64(b.Max), ratio)))
}

// Ratio returns Current/Max in Q32.32, zero when Max is zero
func (b Bounded[T]) Ratio() int64 {
	if b.Max <= 0 {
		return 0
	}
	return vmath.MulDiv(int64(b.Current), vmath.Scale, int64(b.Max))
}

func (b Bounded[T]) IsAboveMin() bool { return b.Current > 0 }
func (b Bounded[T]) IsMax() bool      { return b.Current >= b.Max }

// Health is fixed-point hit points
type Health = Bounded[int64]

// Timer is a duration countdown, expired when not above min
type Timer = Bounded[time.Duration]
