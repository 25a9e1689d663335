// Package audio synthesizes the game's sound cues.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the fire, hit and explode cues through the speaker.
// Every cue is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to release the device, so a later Initialize is a fresh Play.
	sm.initialized = false
}

// Fire plays a short descending laser zap.
func (sm *SoundManager) Fire() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*120), NewZapGenerator(sampleRate, 1400, 300)))
}

// Hit plays the crack of a breaking asteroid.
func (sm *SoundManager) Hit() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*200), NewNoiseGenerator(sampleRate, 0.2, 0.08)))
}

// Explode plays the ship's long rumble.
func (sm *SoundManager) Explode() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*600), NewNoiseGenerator(sampleRate, 0.35, 0.3)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Nop is a silent cue player for sessions without a speaker.
type Nop struct{}

func (Nop) Fire()    {}
func (Nop) Hit()     {}
func (Nop) Explode() {}
