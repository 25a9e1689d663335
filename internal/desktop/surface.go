// Package desktop runs the game in a window with ebiten.
package desktop

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/classicroids/internal/draw"
)

// Debug font glyph size used by ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// maxCachedTexts bounds the rendered text cache; scores change every hit.
const maxCachedTexts = 64

// Surface draws onto an ebiten image.
type Surface struct {
	draw.Path
	dst   *ebiten.Image
	texts map[string]*ebiten.Image
}

// NewSurface creates a surface drawing onto dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:   dst,
		texts: make(map[string]*ebiten.Image),
	}
}

func (s *Surface) Stroke(c color.NRGBA, width float64) {
	s.Segments(func(a, b draw.Point) {
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
	})
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Text draws s with the debug font scaled to style.Size, tinted by style.Color.
func (s *Surface) Text(str string, x, y float64, style draw.TextStyle) {
	if str == "" || style.Color.A == 0 {
		return
	}
	img := s.textImage(str)

	scale := style.Size / glyphHeight
	w := float64(utf8.RuneCountInString(str)*glyphWidth) * scale
	h := glyphHeight * scale

	switch style.Align {
	case draw.AlignCenter:
		x -= w / 2
	case draw.AlignRight:
		x -= w
	}
	switch style.Baseline {
	case draw.BaselineMiddle:
		y -= h / 2
	case draw.BaselineBottom:
		y -= h
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color)
	s.dst.DrawImage(img, op)
}

func (s *Surface) textImage(str string) *ebiten.Image {
	if img, ok := s.texts[str]; ok {
		return img
	}
	if len(s.texts) >= maxCachedTexts {
		for k, img := range s.texts {
			img.Deallocate()
			delete(s.texts, k)
		}
	}
	img := ebiten.NewImage(utf8.RuneCountInString(str)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrintAt(img, str, 0, 0)
	s.texts[str] = img
	return img
}

var _ draw.Surface = (*Surface)(nil)
