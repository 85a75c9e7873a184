package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one synthesized transition sound.
type Cue int

const (
	// CueGust is the wind swell played when the incoming region appears.
	CueGust Cue = iota

	// CueSettle is the low tone played when the run-off completes.
	CueSettle
)

const (
	gustDuration = 700 * time.Millisecond
	gustAttack   = 120 * time.Millisecond
	gustRelease  = 450 * time.Millisecond

	settleFreq     = 196.0 // G3
	settleDuration = 350 * time.Millisecond
	settleAttack   = 10 * time.Millisecond
	settleRelease  = 300 * time.Millisecond
)

// CreateGust builds the wind swell: enveloped noise whose loudness scales
// with the scroll velocity at the moment of the crossing, so a hard flick
// gusts louder than a slow drift. Velocity is expected in [0,1].
func CreateGust(rate beep.SampleRate, velocity float64) beep.Streamer {
	if velocity < 0 {
		velocity = 0
	}
	if velocity > 1 {
		velocity = 1
	}

	noise := NewOscillator(0, gustDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, gustDuration, gustAttack, gustRelease, rate)

	// Audible floor even at rest; velocity doubles it at full flick.
	return newVolume(shaped, 0.15+0.15*velocity)
}

// CreateSettle builds the completion tone: a short low sine with a near
// instant attack.
func CreateSettle(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(settleFreq, settleDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, settleDuration, settleAttack, settleRelease, rate)
	return newVolume(shaped, 0.25)
}

// Player owns the speaker and plays cues fire-and-forget. Construction does
// not touch the audio device; Init does, and a failed or skipped Init leaves
// the player silently inert.
type Player struct {
	rate beep.SampleRate

	mu      sync.Mutex
	ready   bool
	enabled bool
	master  float64
}

// NewPlayer creates a player at the given sample rate with master volume in
// [0,1].
func NewPlayer(rate beep.SampleRate, master float64) *Player {
	if master < 0 {
		master = 0
	}
	if master > 1 {
		master = 1
	}
	return &Player{rate: rate, enabled: true, master: master}
}

// Init opens the speaker with a buffer sized for UI latency.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// SetEnabled toggles cue playback without touching the speaker.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Play starts a cue if the player is live. Velocity only affects CueGust.
func (p *Player) Play(cue Cue, velocity float64) {
	p.mu.Lock()
	ready := p.ready && p.enabled
	master := p.master
	p.mu.Unlock()

	if !ready {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueGust:
		s = CreateGust(p.rate, velocity)
	case CueSettle:
		s = CreateSettle(p.rate)
	default:
		return
	}

	speaker.Play(newVolume(s, master))
}
