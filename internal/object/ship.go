package object

import (
	"image/color"
	"math"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/input"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y             float64 // Position (center of ship)
	R                float64 // Collision radius
	Angle            float64 // Heading in radians (0 = right, increases counter-clockwise)
	Rot              float64 // Rotation applied each tick
	ThrustX, ThrustY float64 // Velocity in pixels per tick
	Thrusting        bool
	Dead             bool

	BlinkNum    int // Blink phases left; the ship is invulnerable while > 0
	BlinkTime   int // Ticks left in the current blink phase
	ExplodeTime int // Ticks of explosion left, 0 when intact

	Lasers   []*Laser
	CanShoot bool // Latch cleared by every Fire, restored by AllowRefire
}

// NewShip creates a ship at the screen center, pointing up, at rest and invulnerable.
func NewShip(screen Screen) *Ship {
	x, y := screen.Center()
	return &Ship{
		X:         x,
		Y:         y,
		R:         config.ShipSize / 2,
		Angle:     math.Pi / 2,
		BlinkNum:  config.BlinkCount,
		BlinkTime: config.BlinkTicks,
		CanShoot:  true,
	}
}

// Exploding reports whether the ship is in its explosion.
func (s *Ship) Exploding() bool {
	return s.ExplodeTime > 0
}

// Invulnerable reports whether blink phases remain.
func (s *Ship) Invulnerable() bool {
	return s.BlinkNum > 0
}

// BlinkOn reports whether the ship is visible in the current blink phase.
func (s *Ship) BlinkOn() bool {
	return s.BlinkNum%2 == 0
}

// Explode starts the ship's explosion and stops it in place.
func (s *Ship) Explode() {
	s.ExplodeTime = config.ShipExplodeTicks
}

// Nose returns the tip of the ship.
func (s *Ship) Nose() (x, y float64) {
	return s.X + 4.0/3.0*s.R*math.Cos(s.Angle), s.Y - 4.0/3.0*s.R*math.Sin(s.Angle)
}

// Apply applies one control command. Returns true if a laser was fired.
func (s *Ship) Apply(cmd input.Command) bool {
	switch cmd {
	case input.RotateLeftStart:
		s.Rot = config.TurnPerTick
	case input.RotateRightStart:
		s.Rot = -config.TurnPerTick
	case input.RotateLeftStop, input.RotateRightStop:
		s.Rot = 0
	case input.ThrustStart:
		s.Thrusting = true
	case input.ThrustStop:
		s.Thrusting = false
	case input.Fire:
		return s.Fire()
	case input.AllowRefire:
		s.CanShoot = true
	}
	return false
}

// Fire adds a laser at the nose when the latch is set and the cap allows it.
// The latch is cleared either way.
func (s *Ship) Fire() bool {
	fired := false
	if s.CanShoot && len(s.Lasers) < config.MaxLasers {
		x, y := s.Nose()
		s.Lasers = append(s.Lasers, NewLaser(x, y, s.Angle))
		fired = true
	}
	s.CanShoot = false
	return fired
}

// Accelerate applies thrust along the heading, or friction when coasting.
func (s *Ship) Accelerate() {
	if s.Thrusting && !s.Dead {
		s.ThrustX += config.ShipThrust * math.Cos(s.Angle) / config.FPS
		s.ThrustY -= config.ShipThrust * math.Sin(s.Angle) / config.FPS
		return
	}
	s.ThrustX -= config.Friction * s.ThrustX / config.FPS
	s.ThrustY -= config.Friction * s.ThrustY / config.FPS
}

// CountBlink advances the invulnerability blink. It only runs while not exploding.
func (s *Ship) CountBlink() {
	if s.Exploding() || s.BlinkNum == 0 {
		return
	}
	s.BlinkTime--
	if s.BlinkTime <= 0 {
		s.BlinkTime = config.BlinkTicks
		s.BlinkNum--
	}
}

// Move rotates and moves the ship one tick. Exploding ships stay put.
func (s *Ship) Move() {
	if s.Exploding() {
		return
	}
	s.Angle += s.Rot
	s.X += s.ThrustX
	s.Y += s.ThrustY
}

// CountExplosion advances the explosion. Returns true on the tick it finishes.
func (s *Ship) CountExplosion() bool {
	if !s.Exploding() {
		return false
	}
	s.ExplodeTime--
	return s.ExplodeTime == 0
}

// UpdateLasers advances every laser and drops the expired ones.
func (s *Ship) UpdateLasers(screen Screen) {
	kept := s.Lasers[:0]
	for _, l := range s.Lasers {
		if !l.Update(screen) {
			kept = append(kept, l)
		}
	}
	clear(s.Lasers[len(kept):])
	s.Lasers = kept
}

// Draw renders the ship, its exhaust and its explosion.
func (s *Ship) Draw(surface draw.Surface) {
	if s.Exploding() {
		surface.FillCircle(s.X, s.Y, s.R*1.7, draw.DarkRed)
		surface.FillCircle(s.X, s.Y, s.R*1.4, draw.Red)
		surface.FillCircle(s.X, s.Y, s.R*1.1, draw.Orange)
		surface.FillCircle(s.X, s.Y, s.R*0.8, draw.Yellow)
		surface.FillCircle(s.X, s.Y, s.R*0.5, draw.White)
		return
	}
	if s.Dead || !s.BlinkOn() {
		return
	}
	if s.Thrusting {
		s.drawExhaust(surface)
	}
	DrawShipOutline(surface, s.X, s.Y, s.R, s.Angle, draw.White)
}

func (s *Ship) drawExhaust(surface draw.Surface) {
	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	r := s.R
	surface.BeginPath()
	surface.MoveTo(s.X-r*(2.0/3.0*cos+0.5*sin), s.Y+r*(2.0/3.0*sin-0.5*cos))
	surface.LineTo(s.X-r*5.0/3.0*cos, s.Y+r*5.0/3.0*sin)
	surface.LineTo(s.X-r*(2.0/3.0*cos-0.5*sin), s.Y+r*(2.0/3.0*sin+0.5*cos))
	surface.ClosePath()
	surface.Stroke(draw.Yellow, config.ShipSize/10)
}

// DrawShipOutline strokes a ship triangle; used for the ship and the lives display.
func DrawShipOutline(surface draw.Surface, x, y, r, angle float64, c color.NRGBA) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	surface.BeginPath()
	surface.MoveTo(x+4.0/3.0*r*cos, y-4.0/3.0*r*sin)
	surface.LineTo(x-r*(2.0/3.0*cos+sin), y+r*(2.0/3.0*sin-cos))
	surface.LineTo(x-r*(2.0/3.0*cos-sin), y+r*(2.0/3.0*sin+cos))
	surface.ClosePath()
	surface.Stroke(c, config.ShipSize/20)
}
