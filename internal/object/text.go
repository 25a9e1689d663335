package object

import (
	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// StatusText is a transient centred message that fades out.
type StatusText struct {
	Value string
	Alpha float64
}

// Show replaces the message and makes it fully opaque.
func (t *StatusText) Show(value string) {
	t.Value = value
	t.Alpha = 1
}

// Visible reports whether the message still renders.
func (t *StatusText) Visible() bool {
	return t.Alpha >= 0
}

// Fade lowers the opacity by one tick's worth while visible.
func (t *StatusText) Fade() {
	if t.Visible() {
		t.Alpha -= config.TextFadePerTick
	}
}

// Draw renders the message at three quarters of the screen height.
func (t *StatusText) Draw(s draw.Surface, screen Screen) {
	if t.Value == "" || !t.Visible() {
		return
	}
	s.Text(t.Value, screen.Width/2, screen.Height*0.75, draw.TextStyle{
		Align:    draw.AlignCenter,
		Baseline: draw.BaselineMiddle,
		Size:     config.TextSize,
		Color:    draw.WithAlpha(draw.White, t.Alpha),
	})
}
