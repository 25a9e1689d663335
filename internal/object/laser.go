package object

import (
	"math"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/loop/config"
	"github.com/tomz197/classicroids/internal/physics"
)

// Laser is a projectile fired by the ship.
type Laser struct {
	X, Y        float64 // Position
	XV, YV      float64 // Velocity in pixels per tick
	Dist        float64 // Distance travelled so far
	ExplodeTime int     // Ticks of hit flash remaining, 0 while in flight
}

// NewLaser creates a laser at (x, y) flying along angle.
func NewLaser(x, y, angle float64) *Laser {
	return &Laser{
		X:  x,
		Y:  y,
		XV: config.LaserSpeed * math.Cos(angle) / config.FPS,
		YV: -config.LaserSpeed * math.Sin(angle) / config.FPS,
	}
}

// Exploding reports whether the laser has hit something and is flashing.
func (l *Laser) Exploding() bool {
	return l.ExplodeTime > 0
}

// Explode switches the laser into its hit flash.
func (l *Laser) Explode() {
	l.ExplodeTime = config.LaserExplodeTicks
}

// Update advances the laser one tick. Returns true if the laser should be removed.
func (l *Laser) Update(screen Screen) bool {
	if l.Dist > config.LaserTravel*screen.Width {
		return true
	}

	if l.ExplodeTime > 0 {
		l.ExplodeTime--
		if l.ExplodeTime == 0 {
			return true
		}
	} else {
		l.X += l.XV
		l.Y += l.YV
		l.Dist += physics.Speed(l.XV, l.YV)
	}

	screen.WrapPoint(&l.X, &l.Y)
	return false
}

// Draw renders the laser as a dot, or as rings sized to the ship while exploding.
func (l *Laser) Draw(s draw.Surface, shipR float64) {
	if l.ExplodeTime == 0 {
		s.FillCircle(l.X, l.Y, config.LaserDotRadius, draw.Salmon)
		return
	}
	s.FillCircle(l.X, l.Y, shipR*0.75, draw.OrangeRed)
	s.FillCircle(l.X, l.Y, shipR*0.5, draw.Salmon)
	s.FillCircle(l.X, l.Y, shipR*0.25, draw.Pink)
}
