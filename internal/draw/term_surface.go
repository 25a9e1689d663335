package draw

import (
	"image/color"
	"unicode/utf8"
)

// Terminal is a Surface that rasterises onto a Canvas and overlays text runs
// as plain terminal characters. Present emits the frame through a ChunkWriter.
type Terminal struct {
	Path
	canvas *Canvas
	texts  []textRun
	sgrBuf []byte
}

type textRun struct {
	s     string
	x, y  float64
	style TextStyle
}

// NewTerminal wraps a canvas as a Surface.
func NewTerminal(canvas *Canvas) *Terminal {
	return &Terminal{canvas: canvas}
}

// Stroke draws every segment of the current path. Terminal lines are one pixel wide.
func (t *Terminal) Stroke(c color.NRGBA, _ float64) {
	t.Segments(func(a, b Point) {
		t.canvas.DrawLine(a, b, c)
	})
}

func (t *Terminal) FillCircle(x, y, r float64, c color.NRGBA) {
	t.canvas.FillCircle(x, y, r, c)
}

func (t *Terminal) FillRect(x, y, w, h float64, c color.NRGBA) {
	t.canvas.FillRect(x, y, w, h, c)
}

// Text queues a text run; it is written over the canvas on Present.
func (t *Terminal) Text(s string, x, y float64, style TextStyle) {
	if s == "" || style.Color.A == 0 {
		return
	}
	t.texts = append(t.texts, textRun{s: s, x: x, y: y, style: style})
}

// Present renders the changed canvas cells followed by the queued text, then
// clears the text queue. The caller flushes cw.
func (t *Terminal) Present(cw *ChunkWriter) {
	t.canvas.Render(cw)

	for _, run := range t.texts {
		t.writeText(cw, run)
	}
	t.texts = t.texts[:0]
}

func (t *Terminal) writeText(cw *ChunkWriter, run textRun) {
	y := run.y
	switch run.style.Baseline {
	case BaselineTop:
		y += run.style.Size / 2
	case BaselineBottom:
		y -= run.style.Size / 2
	}

	col, row := t.canvas.LogicalToTerminal(run.x, y)
	if row < 1 || row > t.canvas.TerminalHeight() {
		return
	}

	runes := []rune(run.s)
	n := len(runes)
	switch run.style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n - 1
	}

	// Clip to the canvas.
	if col < 1 {
		runes = runes[min(1-col, n):]
		col = 1
	}
	if over := col + len(runes) - 1 - t.canvas.TerminalWidth(); over > 0 {
		runes = runes[:max(len(runes)-over, 0)]
	}
	if len(runes) == 0 {
		return
	}

	text := string(runes)
	buf := append(t.sgrBuf[:0], ColorReset...)
	buf = appendFg(buf, premultiply(run.style.Color))
	t.sgrBuf = buf

	cw.MoveCursor(col, row)
	_, _ = cw.Write(buf)
	cw.WriteString(text)
	cw.WriteString(ColorReset)
	t.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(text))
}

var _ Surface = (*Terminal)(nil)
