package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// ZapGenerator generates a square wave sweeping from one frequency to another.
type ZapGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewZapGenerator creates a zap sweeping from 'from' Hz to 'to' Hz over 120ms.
func NewZapGenerator(sr beep.SampleRate, from, to float64) *ZapGenerator {
	return &ZapGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(time.Millisecond * 120),
	}
}

func (g *ZapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := 0.12
		if g.phase >= 0.5 {
			sample = -sample
		}
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ZapGenerator) Err() error {
	return nil
}

// NoiseGenerator generates low-passed white noise with an exponential decay.
type NoiseGenerator struct {
	sr    beep.SampleRate
	gain  float64
	decay float64 // Seconds for the envelope to fall to ~37%
	pos   int
	last  float64
	rng   *rand.Rand
}

// NewNoiseGenerator creates a noise burst generator.
func NewNoiseGenerator(sr beep.SampleRate, gain, decay float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:    sr,
		gain:  gain,
		decay: decay,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// One-pole low-pass keeps the rumble dull
		g.last += 0.2 * (g.rng.Float64()*2 - 1 - g.last)
		sample := g.last * g.gain * math.Exp(-t/g.decay)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
