// Package config centralizes all tunable game parameters.
package config

import (
	"math"
	"time"
)

// Screen resolution - the logical playfield in pixels.
// Terminal rendering scales this to fit the terminal size.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Tick rate of the simulation.
const (
	FPS      = 30
	TickTime = time.Second / FPS
)

// Ship
const (
	ShipSize         = 35.0                   // Ship height in pixels
	ShipThrust       = 6.0                    // Acceleration in pixels per second per second
	ShipTurn         = 360.0                  // Turn speed in degrees per second
	Friction         = 0.8                    // 0 = no friction, 1 = lots of friction
	ShipBlink        = 100 * time.Millisecond // Duration of a single blink while invulnerable
	ShipInvulnerable = 3 * time.Second        // Duration of invulnerability after spawning
	ShipExplosion    = 300 * time.Millisecond // Duration of the ship's explosion
	InitialLives     = 3
)

// Lasers
const (
	MaxLasers      = 8
	LaserSpeed     = 450.0                  // Pixels per second
	LaserTravel    = 0.6                    // Max travel as a fraction of screen width
	LaserExplosion = 100 * time.Millisecond // Duration of a laser's hit flash
	LaserDotRadius = ShipSize / 15
)

// Asteroids
const (
	AsteroidsNum   = 3     // Asteroids on level 0
	AsteroidSize   = 100.0 // Diameter of a large asteroid in pixels
	AsteroidSpeed  = 50.0  // Max starting speed in pixels per second
	AsteroidVert   = 10    // Average number of vertices
	AsteroidJagg   = 0.5   // 0 = round, 1 = very jagged
	LevelSpeedStep = 0.1   // Speed multiplier added per level
	SpawnAttempts  = 1000  // Placement retries before accepting a position near the ship
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
	HighScoreKey        = "highscore"
)

// Status text
const (
	TextFade = 2500 * time.Millisecond
	TextSize = 45.0
)

// Debris sparks on asteroid break
const (
	DebrisPerTier = 4
	DebrisSpeed   = 90.0 // Pixels per second
	DebrisLife    = 500 * time.Millisecond
)

// Debug overlays
const (
	ShowBounding  = false // Draw collision circles
	ShowCenterDot = false // Draw the ship's centre
)

// Terminal harness
const (
	MaxTermWidth             = 200
	MaxTermHeight            = 60
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
	ShutdownDisplaySeconds   = 10.0
)

// Ticks converts a duration to a whole number of ticks, rounding up.
func Ticks(d time.Duration) int {
	return int((d*FPS + time.Second - 1) / time.Second)
}

// BlinkTicks is the length of one blink phase in ticks.
var BlinkTicks = Ticks(ShipBlink)

// BlinkCount is the number of blink phases a fresh ship stays invulnerable for.
var BlinkCount = int((ShipInvulnerable + ShipBlink - 1) / ShipBlink)

// ShipExplodeTicks is the length of the ship's explosion in ticks.
var ShipExplodeTicks = Ticks(ShipExplosion)

// LaserExplodeTicks is the length of a laser's hit flash in ticks.
var LaserExplodeTicks = Ticks(LaserExplosion)

// TurnPerTick is the ship's rotation step in radians per tick.
var TurnPerTick = ShipTurn / 180 * math.Pi / FPS

// TextFadePerTick is the status text alpha lost each tick.
var TextFadePerTick = 1.0 / TextFade.Seconds() / FPS
