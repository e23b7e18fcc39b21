package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/star-fighter/core"
)

const sampleRate = beep.SampleRate(44100)

// Engine synthesizes one-shot sound effects through the system
// speaker. Failed speaker init drops into silent mode rather than
// failing the game.
type Engine struct {
	silent atomic.Bool
	muted  atomic.Bool
}

// NewEngine creates the audio engine and initializes the speaker.
// Speaker failure is absorbed: the engine stays usable and silent.
func NewEngine() *Engine {
	e := &Engine{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		e.silent.Store(true)
	}
	return e
}

// SetMuted toggles playback without tearing down the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Play synthesizes and plays the cue for a sound type.
// Safe to call from the game loop; playback is asynchronous.
func (e *Engine) Play(sound core.SoundType) {
	if e.silent.Load() || e.muted.Load() {
		return
	}

	cue := e.cue(sound)
	if cue == nil {
		return
	}
	speaker.Play(cue)
}

// cue builds the streamer for each sound type. All cues are short
// synthesized one-shots, no sample assets.
func (e *Engine) cue(sound core.SoundType) beep.Streamer {
	switch sound {
	case core.SoundLaunch:
		osc := NewSweep(220, 880, 150*time.Millisecond, WaveSaw, sampleRate)
		return newVolume(NewEnvelope(osc, 150*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate), 0.5)

	case core.SoundBlast:
		osc := NewOscillator(0, 250*time.Millisecond, WaveNoise, sampleRate)
		return newVolume(NewEnvelope(osc, 250*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, sampleRate), 0.6)

	case core.SoundNuke:
		low := NewSweep(120, 40, 900*time.Millisecond, WaveSine, sampleRate)
		noise := NewOscillator(0, 900*time.Millisecond, WaveNoise, sampleRate)
		mixed := beep.Mix(
			NewEnvelope(low, 900*time.Millisecond, 10*time.Millisecond, 600*time.Millisecond, sampleRate),
			newVolume(NewEnvelope(noise, 700*time.Millisecond, 5*time.Millisecond, 500*time.Millisecond, sampleRate), 0.4),
		)
		return newVolume(mixed, 0.8)

	case core.SoundIntercept:
		osc := NewSweep(1200, 400, 120*time.Millisecond, WaveSquare, sampleRate)
		return newVolume(NewEnvelope(osc, 120*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, sampleRate), 0.35)

	case core.SoundPlayerHit:
		osc := NewSweep(300, 80, 300*time.Millisecond, WaveSaw, sampleRate)
		return newVolume(NewEnvelope(osc, 300*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, sampleRate), 0.6)

	case core.SoundBossDown:
		fall := NewSweep(600, 60, 1200*time.Millisecond, WaveSquare, sampleRate)
		rumble := NewOscillator(0, 1200*time.Millisecond, WaveNoise, sampleRate)
		mixed := beep.Mix(
			NewEnvelope(fall, 1200*time.Millisecond, 10*time.Millisecond, 800*time.Millisecond, sampleRate),
			newVolume(NewEnvelope(rumble, 1000*time.Millisecond, 100*time.Millisecond, 700*time.Millisecond, sampleRate), 0.5),
		)
		return newVolume(mixed, 0.7)

	case core.SoundGameOver:
		seq := beep.Seq(
			NewEnvelope(NewOscillator(440, 200*time.Millisecond, WaveSine, sampleRate), 200*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate),
			NewEnvelope(NewOscillator(349, 200*time.Millisecond, WaveSine, sampleRate), 200*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate),
			NewEnvelope(NewOscillator(220, 500*time.Millisecond, WaveSine, sampleRate), 500*time.Millisecond, 5*time.Millisecond, 350*time.Millisecond, sampleRate),
		)
		return newVolume(seq, 0.6)
	}
	return nil
}
