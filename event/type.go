// Package event carries the simulation's output signals to external consumers
package event

// Sound identifies an audio cue emitted by the simulation
type Sound uint8

const (
	// SoundDrawing is emitted every tick a stroke is being captured
	// Consumer: audio loop gate
	SoundDrawing Sound = iota

	// SoundHit is emitted once per enemy damaged by a dash
	SoundHit

	// SoundKill is emitted once per enemy whose health reached its floor
	// Masks SoundHit within the same tick
	SoundKill

	// SoundHitSelf is emitted when the player takes contact damage
	SoundHitSelf

	// SoundBounce is emitted when the player is pushed back off a wall
	SoundBounce

	// SoundExpand is emitted when a room is unlocked
	SoundExpand

	soundCount
)

// SoundCount is the number of distinct sounds
const SoundCount = int(soundCount)

var soundNames = [soundCount]string{
	SoundDrawing: "Drawing",
	SoundHit:     "Hit",
	SoundKill:    "Kill",
	SoundHitSelf: "HitSelf",
	SoundBounce:  "Bounce",
	SoundExpand:  "Expand",
}

func (s Sound) String() string {
	if s >= soundCount {
		return "Unknown"
	}
	return soundNames[s]
}

// Event is a discrete output signal, currently only sound cues
type Event struct {
	Sound Sound
}

func (e Event) String() string {
	return "Sound(" + e.Sound.String() + ")"
}

// PlaySound wraps a sound cue as an event
func PlaySound(s Sound) Event {
	return Event{Sound: s}
}
