package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	winLevel   = 0.2 // linear gain of the win arpeggio
)

// SoundManager plays the crash and finish effects. Every method is a no-op
// until Initialize succeeded, so a machine without audio just runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  1,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayCrash plays a burst of decaying noise
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.seed++
	sm.play(beep.Take(sampleRate.N(time.Millisecond*900), NewCrashGenerator(sampleRate, sm.seed)))
}

// PlayWin plays a short rising arpeggio
func (sm *SoundManager) PlayWin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.5} {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return
		}
		notes = append(notes, beep.Take(sampleRate.N(time.Millisecond*140), attenuate(tone, winLevel)))
	}
	sm.play(beep.Seq(notes...))
}

// attenuate scales s by a linear level in (0, 1]
func attenuate(s beep.Streamer, level float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(level),
	}
}

// CrashGenerator generates white noise under a falling exponential envelope
type CrashGenerator struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	pos   int
	decay float64 // envelope time constant in seconds
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{
		sr:    sr,
		rng:   rand.New(rand.NewSource(seed)),
		decay: 0.18,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, exponential tail
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t/g.decay)
		sample := 0.5 * envelope * (g.rng.Float64()*2 - 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
