package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dash-arena/event"
)

func sounds(ss ...event.Sound) []event.Event {
	out := make([]event.Event, len(ss))
	for i, s := range ss {
		out[i] = event.PlaySound(s)
	}
	return out
}

func TestPlanKillMasksHit(t *testing.T) {
	tests := []struct {
		name    string
		events  []event.Event
		drawing bool
		want    []event.Sound
	}{
		{"empty", nil, false, nil},
		{"drawing gates loop only", sounds(event.SoundDrawing, event.SoundDrawing), true, nil},
		{"hits collapse", sounds(event.SoundHit, event.SoundHit, event.SoundHit), false, []event.Sound{event.SoundHit}},
		{"kill wins", sounds(event.SoundHit, event.SoundKill, event.SoundHit), false, []event.Sound{event.SoundKill}},
		{"others play each time", sounds(event.SoundBounce, event.SoundBounce, event.SoundExpand), false,
			[]event.Sound{event.SoundBounce, event.SoundBounce, event.SoundExpand}},
		{"mixed", sounds(event.SoundDrawing, event.SoundHitSelf, event.SoundHit), true,
			[]event.Sound{event.SoundHitSelf, event.SoundHit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue := Plan(tt.events)
			assert.Equal(t, tt.drawing, cue.Drawing)
			assert.Equal(t, tt.want, cue.OneShots)
		})
	}
}

// TestSynthTerminates verifies every one-shot drains in bounded time with audible output
func TestSynthTerminates(t *testing.T) {
	for _, s := range []event.Sound{event.SoundHit, event.SoundKill, event.SoundHitSelf, event.SoundBounce, event.SoundExpand} {
		t.Run(s.String(), func(t *testing.T) {
			st := Synth(s, 1)
			require.NotNil(t, st)

			buf := make([][2]float64, 512)
			total, peak := 0, 0.0
			for range 1000 {
				n, ok := st.Stream(buf)
				for i := 0; i < n; i++ {
					peak = max(peak, buf[i][0], -buf[i][0])
				}
				total += n
				if !ok {
					break
				}
			}
			assert.Less(t, total, sampleRate.N(2*time.Second), "one-shot must end")
			assert.Positive(t, total)
			assert.Positive(t, peak)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}

	assert.Nil(t, Synth(event.SoundDrawing, 1), "drawing is looped, not a one-shot")
}

func TestSynthZeroVolumeIsSilent(t *testing.T) {
	st := Synth(event.SoundHit, 0)
	buf := make([][2]float64, 256)
	n, _ := st.Stream(buf)
	for i := 0; i < n; i++ {
		assert.Zero(t, buf[i][0])
	}
}

// TestSoundManagerGracefulDegradation verifies operations are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.Dispatch(sounds(event.SoundDrawing, event.SoundKill))
		sm.SetMuted(true)
		sm.Cleanup()
	})
	assert.True(t, sm.Muted())
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected without audio device): %v", err)
		return
	}
	require.NoError(t, sm.Initialize(), "second initialize is a no-op")

	sm.Dispatch(sounds(event.SoundExpand))
	sm.Cleanup()
}
