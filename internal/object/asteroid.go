package object

import (
	"math"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// Tier is the size class of an asteroid.
type Tier int

const (
	TierLarge Tier = iota
	TierMedium
	TierSmall
)

// Radius returns the collision and outline radius of the tier.
func (t Tier) Radius() float64 {
	switch t {
	case TierLarge:
		return math.Ceil(config.AsteroidSize / 2)
	case TierMedium:
		return math.Ceil(config.AsteroidSize / 4)
	default:
		return math.Ceil(config.AsteroidSize / 8)
	}
}

// Points returns the score for destroying an asteroid of the tier.
func (t Tier) Points() int {
	switch t {
	case TierLarge:
		return config.ScoreLargeAsteroid
	case TierMedium:
		return config.ScoreMediumAsteroid
	default:
		return config.ScoreSmallAsteroid
	}
}

// Child returns the tier of the fragments, and false for the smallest tier.
func (t Tier) Child() (Tier, bool) {
	if t >= TierSmall {
		return t, false
	}
	return t + 1, true
}

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}

// Asteroid is a drifting rock with a silhouette fixed at spawn.
type Asteroid struct {
	X, Y   float64   // Position (center)
	XV, YV float64   // Velocity in pixels per tick
	Angle  float64   // Heading offset of the first vertex
	Tier   Tier      // Size class
	R      float64   // Radius derived from Tier
	Offs   []float64 // Per-vertex radius multipliers; len is the vertex count
}

// Update moves the asteroid and wraps it with its radius as margin.
func (a *Asteroid) Update(screen Screen) {
	a.X += a.XV
	a.Y += a.YV
	screen.WrapPosition(&a.X, &a.Y, a.R)
}

// Draw renders the asteroid as a closed jagged polygon.
func (a *Asteroid) Draw(s draw.Surface) {
	vert := len(a.Offs)
	if vert == 0 {
		return
	}
	s.BeginPath()
	s.MoveTo(a.X+a.R*a.Offs[0]*math.Cos(a.Angle), a.Y+a.R*a.Offs[0]*math.Sin(a.Angle))
	for j := 1; j < vert; j++ {
		va := a.Angle + float64(j)*2*math.Pi/float64(vert)
		s.LineTo(a.X+a.R*a.Offs[j]*math.Cos(va), a.Y+a.R*a.Offs[j]*math.Sin(va))
	}
	s.ClosePath()
	s.Stroke(draw.SlateGrey, config.ShipSize/20)
}
