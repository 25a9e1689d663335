package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// TestSoundManagerGracefulDegradation verifies cues don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Fire()
	sm.Hit()
	sm.Explode()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies the manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI without audio devices; the game runs silent then.
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}
	sm.Fire()
	sm.Cleanup()
}

func TestZapGeneratorFadesOut(t *testing.T) {
	g := NewZapGenerator(sampleRate, 1400, 300)
	buf := make([][2]float64, sampleRate.N(120_000_000))

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	for i, s := range buf {
		if math.Abs(s[0]) > 0.12 || s[0] != s[1] {
			t.Fatalf("sample %d = %v out of range", i, s)
		}
	}

	tail := make([][2]float64, 16)
	g.Stream(tail)
	for _, s := range tail {
		if s[0] != 0 {
			t.Fatalf("zap should be silent after its sweep, got %v", s[0])
		}
	}
}

func TestNoiseGeneratorDecays(t *testing.T) {
	g := NewNoiseGenerator(sampleRate, 0.35, 0.3)
	cue := beep.Take(sampleRate.N(600_000_000), g)

	buf := make([][2]float64, 512)
	var first, last float64
	total := 0
	for {
		n, ok := cue.Stream(buf)
		if !ok {
			break
		}
		peak := 0.0
		for _, s := range buf[:n] {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if total == 0 {
			first = peak
		}
		last = peak
		total += n
	}
	if total != sampleRate.N(600_000_000) {
		t.Errorf("cue length = %d samples, want %d", total, sampleRate.N(600_000_000))
	}
	if last >= first {
		t.Errorf("noise should decay: first peak %v, last peak %v", first, last)
	}
	if first > 0.35 {
		t.Errorf("peak %v above gain", first)
	}
}

func TestNop(t *testing.T) {
	var n Nop
	n.Fire()
	n.Hit()
	n.Explode()
}
