package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/dash-arena/event"
	"github.com/lixenwraith/dash-arena/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	noise    uint64
}

func newOscillator(freq float64, duration time.Duration, wave WaveType) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: sampleRate.N(duration),
		wave:     wave,
		noise:    0x9E3779B97F4A7C15,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 7
			o.noise ^= o.noise << 17
			val = float64(o.noise>>11)/float64(1<<53)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	att := sampleRate.N(attack)
	rel := sampleRate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay applies an exponential fade, used for the kill crackle
type decay struct {
	streamer beep.Streamer
	position int
	rate     float64
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.position) / float64(sampleRate) * d.rate)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// whroom is an endless low sweep, the drawing loop
type whroom struct {
	pos   int
	cycle int
}

func newWhroom() *whroom {
	return &whroom{cycle: sampleRate.N(parameter.DrawingLoopCycle)}
}

func (g *whroom) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		cyclePos := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := parameter.DrawingLoopMinFreq + parameter.DrawingLoopSweep*math.Sin(cyclePos*math.Pi)
		amplitude := 0.15 * (0.5 + 0.5*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *whroom) Err() error { return nil }

// newVolume wraps s with a linear gain, log2(0) is -Inf so zero is silence
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synth builds the one-shot streamer for a sound cue, nil for looped or unknown sounds
func Synth(s event.Sound, volume float64) beep.Streamer {
	var src beep.Streamer
	switch s {
	case event.SoundHit:
		src = newEnvelope(newOscillator(parameter.HitSoundFreq, parameter.HitSoundDuration, WaveSquare),
			parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease)
	case event.SoundKill:
		crackle := newOscillator(0, parameter.KillSoundDuration, WaveNoise)
		rumble := newOscillator(80, parameter.KillSoundDuration, WaveSine)
		src = &decay{
			streamer: beep.Mix(newVolume(crackle, 0.25), newVolume(rumble, 0.3)),
			rate:     parameter.KillSoundDecay,
		}
	case event.SoundHitSelf:
		src = newEnvelope(newOscillator(parameter.HitSelfSoundFreq, parameter.HitSelfSoundDuration, WaveSaw),
			parameter.HitSelfSoundDuration, parameter.HitSelfSoundAttack, parameter.HitSelfSoundRelease)
	case event.SoundBounce:
		src = newEnvelope(newOscillator(parameter.BounceSoundFreq, parameter.BounceSoundDuration, WaveSine),
			parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease)
	case event.SoundExpand:
		n1 := newEnvelope(newOscillator(parameter.ExpandSoundNote1Freq, parameter.ExpandSoundNote1Duration, WaveSquare),
			parameter.ExpandSoundNote1Duration, parameter.ExpandSoundAttack, parameter.ExpandSoundNote1Release)
		n2 := newEnvelope(newOscillator(parameter.ExpandSoundNote2Freq, parameter.ExpandSoundNote2Duration, WaveSquare),
			parameter.ExpandSoundNote2Duration, parameter.ExpandSoundAttack, parameter.ExpandSoundNote2Release)
		src = beep.Seq(n1, n2)
	default:
		return nil
	}
	return newVolume(src, volume)
}
