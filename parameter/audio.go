package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect (linear, 0..1)
	AudioMasterVolume = 0.6
)

// Hit Sound: short square blip
const (
	HitSoundFreq     = 660.0
	HitSoundDuration = 70 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Kill Sound: noise crackle over a falling tone
const (
	KillSoundDuration = 300 * time.Millisecond
	KillSoundDecay    = 8.0 // Exponential envelope rate per second
)

// HitSelf Sound: harsh low buzz
const (
	HitSelfSoundFreq     = 120.0
	HitSelfSoundDuration = 150 * time.Millisecond
	HitSelfSoundAttack   = 10 * time.Millisecond
	HitSelfSoundRelease  = 60 * time.Millisecond
)

// Bounce Sound: soft thud
const (
	BounceSoundFreq     = 180.0
	BounceSoundDuration = 60 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 50 * time.Millisecond
)

// Expand Sound: two rising notes
const (
	ExpandSoundNote1Freq     = 523.25 // C5
	ExpandSoundNote2Freq     = 783.99 // G5
	ExpandSoundNote1Duration = 90 * time.Millisecond
	ExpandSoundNote2Duration = 320 * time.Millisecond
	ExpandSoundAttack        = 5 * time.Millisecond
	ExpandSoundNote1Release  = 40 * time.Millisecond
	ExpandSoundNote2Release  = 250 * time.Millisecond
)

// Drawing Loop: sweeping whroom, gated while a stroke is captured
const (
	DrawingLoopCycle   = 2 * time.Second
	DrawingLoopMinFreq = 80.0
	DrawingLoopSweep   = 120.0
	DrawingLoopVolume  = 0.5
)
