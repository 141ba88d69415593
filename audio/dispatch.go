// Package audio plays simulation sound cues through the beep speaker
package audio

import (
	"github.com/lixenwraith/dash-arena/event"
)

// Cue is the audio plan for one tick of events
type Cue struct {
	// Drawing keeps the drawing loop audible for this tick
	Drawing bool

	// OneShots are played in order
	OneShots []event.Sound
}

// Plan folds a tick's events into a cue
// Hit and Kill are collapsed to one sound with Kill taking precedence;
// every HitSelf, Bounce and Expand plays
func Plan(events []event.Event) Cue {
	var cue Cue
	hit, kill := false, false
	for _, e := range events {
		switch e.Sound {
		case event.SoundDrawing:
			cue.Drawing = true
		case event.SoundHit:
			hit = true
		case event.SoundKill:
			kill = true
		default:
			cue.OneShots = append(cue.OneShots, e.Sound)
		}
	}
	switch {
	case kill:
		cue.OneShots = append(cue.OneShots, event.SoundKill)
	case hit:
		cue.OneShots = append(cue.OneShots, event.SoundHit)
	}
	return cue
}
