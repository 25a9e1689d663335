// Package object holds the game entities: ship, lasers, asteroids, debris and status text.
package object

import (
	"image/color"
	"math"

	"github.com/tomz197/classicroids/internal/draw"
)

// Screen is the logical playfield size.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (s Screen) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// WrapPosition wraps x and y around the screen edges (Asteroids-style).
// An entity leaves once it is margin pixels past an edge and re-enters
// margin pixels outside the opposite edge, so the other coordinate is kept.
func (s Screen) WrapPosition(x, y *float64, margin float64) {
	if *x < -margin {
		*x = s.Width + margin
	} else if *x > s.Width+margin {
		*x = -margin
	}
	if *y < -margin {
		*y = s.Height + margin
	} else if *y > s.Height+margin {
		*y = -margin
	}
}

// WrapPoint wraps a point-sized entity exactly at the screen edges.
func (s Screen) WrapPoint(x, y *float64) {
	if *x < 0 {
		*x = s.Width
	} else if *x > s.Width {
		*x = 0
	}
	if *y < 0 {
		*y = s.Height
	} else if *y > s.Height {
		*y = 0
	}
}

// circleSegments is the number of sides used to outline a circle.
const circleSegments = 24

// StrokeCircle outlines a circle on a surface as a closed polygon.
func StrokeCircle(s draw.Surface, x, y, r float64, c color.NRGBA, width float64) {
	s.BeginPath()
	s.MoveTo(x+r, y)
	for i := 1; i < circleSegments; i++ {
		a := float64(i) * 2 * math.Pi / circleSegments
		s.LineTo(x+r*math.Cos(a), y+r*math.Sin(a))
	}
	s.ClosePath()
	s.Stroke(c, width)
}
