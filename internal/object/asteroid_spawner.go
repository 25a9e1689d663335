package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/classicroids/internal/loop/config"
	"github.com/tomz197/classicroids/internal/physics"
)

// AsteroidSpawner creates asteroids for a level: the opening field and split fragments.
type AsteroidSpawner struct {
	rng    *rand.Rand
	screen Screen
}

// NewAsteroidSpawner creates a spawner drawing randomness from rng.
func NewAsteroidSpawner(rng *rand.Rand, screen Screen) *AsteroidSpawner {
	return &AsteroidSpawner{
		rng:    rng,
		screen: screen,
	}
}

// NewAsteroid creates an asteroid of the given tier at (x, y) with a random
// velocity scaled by level and a fresh silhouette.
func (s *AsteroidSpawner) NewAsteroid(x, y float64, tier Tier, level int) *Asteroid {
	lvlMult := 1 + config.LevelSpeedStep*float64(level)

	vert := int(math.Floor(s.rng.Float64()*(config.AsteroidVert+1) + config.AsteroidVert/2))
	offs := make([]float64, vert)
	for i := range offs {
		offs[i] = s.rng.Float64()*config.AsteroidJagg*2 + 1 - config.AsteroidJagg
	}

	return &Asteroid{
		X:     x,
		Y:     y,
		XV:    s.axisSpeed(lvlMult),
		YV:    s.axisSpeed(lvlMult),
		Angle: s.rng.Float64() * 2 * math.Pi,
		Tier:  tier,
		R:     tier.Radius(),
		Offs:  offs,
	}
}

func (s *AsteroidSpawner) axisSpeed(lvlMult float64) float64 {
	v := s.rng.Float64() * config.AsteroidSpeed * lvlMult / config.FPS
	if s.rng.Float64() < 0.5 {
		return v
	}
	return -v
}

// Belt spawns the opening field for a level: AsteroidsNum + level large
// asteroids at integer positions kept clear of the ship. After SpawnAttempts
// rejected positions the last one is accepted.
func (s *AsteroidSpawner) Belt(level int, ship *Ship) []*Asteroid {
	count := config.AsteroidsNum + level
	clearance := config.AsteroidSize*2 + ship.R
	w := int(s.screen.Width)
	h := int(s.screen.Height)

	roids := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		var x, y float64
		for attempt := 0; attempt < config.SpawnAttempts; attempt++ {
			x = float64(s.rng.Intn(w))
			y = float64(s.rng.Intn(h))
			if physics.Distance(ship.X, ship.Y, x, y) >= clearance {
				break
			}
		}
		roids = append(roids, s.NewAsteroid(x, y, TierLarge, level))
	}
	return roids
}

// Split returns the two fragments of a destroyed asteroid, or nil for the smallest tier.
func (s *AsteroidSpawner) Split(a *Asteroid, level int) []*Asteroid {
	child, ok := a.Tier.Child()
	if !ok {
		return nil
	}
	return []*Asteroid{
		s.NewAsteroid(a.X, a.Y, child, level),
		s.NewAsteroid(a.X, a.Y, child, level),
	}
}
