package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
)

// SoundManager owns the speaker mixer and the gated drawing loop
// Every method is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	drawing     *effects.Volume
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: parameter.AudioMasterVolume,
	}
}

// Initialize opens the speaker and starts the silent drawing loop
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.drawing = newVolume(newWhroom(), parameter.DrawingLoopVolume*sm.volume)
	sm.drawing.Silent = true
	sm.mixer.Add(sm.drawing)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences all output, including sounds already queued
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	if muted {
		sm.mixer.Clear()
		sm.mixer.Add(sm.drawing)
		sm.drawing.Silent = true
	}
	speaker.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Dispatch plays one tick of simulation events
func (sm *SoundManager) Dispatch(events []event.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	cue := Plan(events)

	speaker.Lock()
	defer speaker.Unlock()
	sm.drawing.Silent = !cue.Drawing
	for _, s := range cue.OneShots {
		if st := Synth(s, sm.volume); st != nil {
			sm.mixer.Add(st)
		}
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
