package loop

import (
	"github.com/tomz197/classicroids/internal/object"
	"github.com/tomz197/classicroids/internal/physics"
)

// detectLaserHits destroys every asteroid hit by a laser in flight.
// Asteroids are visited from last to first and, for each, lasers from last
// to first; the first hit wins and each laser hits at most once per tick.
func (g *Game) detectLaserHits() {
	lasers := g.ship.Lasers
	if len(lasers) == 0 || len(g.roids) == 0 {
		return
	}

	g.grid.Clear()
	for j, l := range lasers {
		if !l.Exploding() {
			g.grid.Insert(l.X, l.Y, j)
		}
	}

	g.beginSweep()
	for i := len(g.roids) - 1; i >= 0; i-- {
		a := g.roids[i]
		g.candidates = g.grid.Candidates(a.X, a.Y, g.candidates)
		for _, j := range g.candidates {
			l := lasers[j]
			if l.Exploding() {
				continue
			}
			if physics.PointInCircle(l.X, l.Y, a.X, a.Y, a.R) {
				g.destroyAsteroid(i)
				l.Explode()
				break
			}
		}
	}
	g.sweepAsteroids()
}

// detectShipHit explodes a vulnerable ship touching an asteroid and destroys
// the first such asteroid.
func (g *Game) detectShipHit() {
	s := g.ship
	if s.Dead || s.Exploding() || s.Invulnerable() {
		return
	}
	for i, a := range g.roids {
		if !physics.CirclesOverlap(s.X, s.Y, s.R, a.X, a.Y, a.R) {
			continue
		}
		s.Explode()
		g.sounds.Explode()

		g.beginSweep()
		g.destroyAsteroid(i)
		g.sweepAsteroids()
		return
	}
}

// beginSweep prepares the removal set for the current asteroid slice.
func (g *Game) beginSweep() {
	n := len(g.roids)
	if cap(g.removed) < n {
		g.removed = make([]bool, n)
	}
	g.removed = g.removed[:n]
	clear(g.removed)
	g.spawned = g.spawned[:0]
}

// destroyAsteroid scores asteroid i, queues its fragments and marks it for removal.
func (g *Game) destroyAsteroid(i int) {
	a := g.roids[i]
	g.removed[i] = true
	g.spawned = append(g.spawned, g.spawner.Split(a, g.level)...)
	g.debris = append(g.debris, object.SpawnDebris(g.rng, a)...)
	g.addScore(a.Tier.Points())
	g.sounds.Hit()
}

// sweepAsteroids drops the marked asteroids and appends the fragments.
func (g *Game) sweepAsteroids() {
	kept := g.roids[:0]
	for i, a := range g.roids {
		if !g.removed[i] {
			kept = append(kept, a)
		}
	}
	clear(g.roids[len(kept):])
	g.roids = append(kept, g.spawned...)
	clear(g.spawned)
	g.spawned = g.spawned[:0]
}
