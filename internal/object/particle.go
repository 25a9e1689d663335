package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived debris spark. It has no effect on gameplay.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity in pixels per tick
	Life    int     // Ticks remaining
	MaxLife int     // Initial lifetime (for fade calculation)
	Drag    float64 // Velocity kept per tick (1.0 = no drag)
}

// debrisDrag is the velocity kept by a spark each tick.
const debrisDrag = 0.92

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, life int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = life
	p.MaxLife = life
	p.Drag = debrisDrag
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnDebris emits a burst of sparks for a broken asteroid; larger tiers emit more.
func SpawnDebris(rng *rand.Rand, a *Asteroid) []*Particle {
	count := config.DebrisPerTier * int(TierSmall-a.Tier+1)
	life := config.Ticks(config.DebrisLife)

	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		// Random direction
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := config.DebrisSpeed / config.FPS * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		l := max(1, int(float64(life)*(0.5+rng.Float64()*0.5)))

		// Sparks start on the rim
		x := a.X + math.Cos(angle)*a.R*0.5
		y := a.Y + math.Sin(angle)*a.R*0.5
		out = append(out, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, l))
	}
	return out
}

// Update moves the particle and checks lifetime. Returns true if it should be removed.
func (p *Particle) Update() bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}

	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY

	// No screen wrapping for particles - they just disappear at edges
	return false
}

// Draw renders the particle as a dot fading over its lifetime.
func (p *Particle) Draw(s draw.Surface) {
	if p.MaxLife <= 0 {
		return
	}
	alpha := float64(p.Life) / float64(p.MaxLife)
	s.FillCircle(p.X, p.Y, config.LaserDotRadius, draw.WithAlpha(draw.SlateGrey, alpha))
}
