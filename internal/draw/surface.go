package draw

import "image/color"

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of a text run.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// TextStyle describes how a text run is placed and coloured.
// Color.A is the text opacity.
type TextStyle struct {
	Align    Align
	Baseline Baseline
	Size     float64 // Font height in logical pixels
	Color    color.NRGBA
}

// Surface is a 2D vector drawing target sized to the logical playfield.
// Paths are built with BeginPath/MoveTo/LineTo/ClosePath and drawn with Stroke.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke(c color.NRGBA, width float64)
	FillCircle(x, y, r float64, c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	Text(s string, x, y float64, style TextStyle)
}

// Palette used by the game.
var (
	Black     = color.NRGBA{0, 0, 0, 255}
	White     = color.NRGBA{255, 255, 255, 255}
	SlateGrey = color.NRGBA{112, 128, 144, 255}
	Lime      = color.NRGBA{0, 255, 0, 255}
	DarkRed   = color.NRGBA{139, 0, 0, 255}
	Red       = color.NRGBA{255, 0, 0, 255}
	Orange    = color.NRGBA{255, 165, 0, 255}
	Yellow    = color.NRGBA{255, 255, 0, 255}
	Salmon    = color.NRGBA{250, 128, 114, 255}
	OrangeRed = color.NRGBA{255, 69, 0, 255}
	Pink      = color.NRGBA{255, 192, 203, 255}
)

// WithAlpha returns c with its opacity set to alpha in [0, 1].
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}

// Path accumulates the current path for surfaces that stroke segment by segment.
// Surfaces embed it to get BeginPath/MoveTo/LineTo/ClosePath.
type Path struct {
	segments []segment
	start    Point
	cursor   Point
	open     bool
}

type segment struct {
	a, b Point
}

// BeginPath discards the current path.
func (p *Path) BeginPath() {
	p.segments = p.segments[:0]
	p.open = false
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{X: x, Y: y}
	p.cursor = p.start
	p.open = true
}

// LineTo adds a segment from the cursor to (x, y).
func (p *Path) LineTo(x, y float64) {
	next := Point{X: x, Y: y}
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.segments = append(p.segments, segment{a: p.cursor, b: next})
	p.cursor = next
}

// ClosePath joins the cursor back to the start of the subpath.
func (p *Path) ClosePath() {
	if !p.open {
		return
	}
	if p.cursor != p.start {
		p.segments = append(p.segments, segment{a: p.cursor, b: p.start})
	}
	p.cursor = p.start
}

// Segments calls fn for every segment of the current path.
func (p *Path) Segments(fn func(a, b Point)) {
	for _, s := range p.segments {
		fn(s.a, s.b)
	}
}
