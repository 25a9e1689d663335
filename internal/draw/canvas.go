package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Game objects draw in logical coordinates which are scaled to terminal pixels.
//
// Render only emits cells that changed since the previous frame; text written on top
// of the canvas must be reported with MarkTextDirty so those cells are repainted.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2
	pixels         []color.NRGBA
	cells          []cell // Last rendered frame, [row * termWidth + col]
	dirty          []bool // Cells to repaint regardless of content

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	renderBuf []byte
}

// cell is what a terminal cell shows: a half-block glyph and its two colours.
type cell struct {
	ch     rune
	fg, bg color.NRGBA
}

var emptyCell = cell{ch: ' '}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.NRGBA, subPixelHeight*termWidth)
		c.cells = make([]cell, termHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// MarkTextDirty marks n cells starting at the 1-based (col, row) as overwritten by text.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for i := col - 1; i < col-1+n; i++ {
		if i >= 0 && i < c.termWidth {
			c.dirty[r*c.termWidth+i] = true
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
// Opaque black clears the pixel.
func (c *Canvas) setPixel(x, y int, clr color.NRGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		if clr.R == 0 && clr.G == 0 && clr.B == 0 {
			clr.A = 0
		}
		c.pixels[y*c.termWidth+x] = clr
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, clr color.NRGBA) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, clr)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle fills a circle given in logical coordinates.
// Axis scales differ, so the circle is filled as an ellipse in pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	if rx < 0.5 && ry < 0.5 {
		c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)), clr)
		return
	}

	yStart := int(math.Floor(pcy - ry))
	yEnd := int(math.Ceil(pcy + ry))
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - half - 0.5))
		xEnd := int(math.Floor(pcx + half - 0.5))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y, clr)
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x + w) * c.scaleX))
	y1 := int(math.Ceil((y + h) * c.scaleY))
	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			c.setPixel(px, py, clr)
		}
	}
}

// cellAt composes the two sub-pixels of a terminal cell into a glyph.
func (c *Canvas) cellAt(row, col int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]

	switch {
	case top.A != 0 && bottom.A != 0 && top == bottom:
		return cell{ch: BlockFull, fg: top}
	case top.A != 0 && bottom.A != 0:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	case top.A != 0:
		return cell{ch: BlockUpperHalf, fg: top}
	case bottom.A != 0:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return emptyCell
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render writes the cells that changed since the last Render.
func (c *Canvas) Render(w io.Writer) {
	buf := c.renderBuf[:0]
	var curFg, curBg color.NRGBA
	styled := false

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			next := c.cellAt(row, col)
			if next == c.cells[idx] && !c.dirty[idx] {
				continue
			}
			c.cells[idx] = next
			c.dirty[idx] = false

			buf = append(buf, "\033["...)
			buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
			buf = append(buf, ';')
			buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
			buf = append(buf, 'H')

			if next == emptyCell {
				if styled {
					buf = append(buf, ColorReset...)
					styled = false
				}
				buf = append(buf, ' ')
				continue
			}

			if !styled || next.fg != curFg || next.bg != curBg {
				buf = append(buf, ColorReset...)
				buf = appendFg(buf, premultiply(next.fg))
				if next.bg.A != 0 {
					buf = appendBg(buf, premultiply(next.bg))
				}
				curFg, curBg, styled = next.fg, next.bg, true
			}
			buf = append(buf, string(next.ch)...)
		}
	}
	if styled {
		buf = append(buf, ColorReset...)
	}
	c.renderBuf = buf

	_ = writeChunks(w, buf)
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	// Positions relative to the canvas origin; the writer adds the offset.
	left := 0
	right := c.termWidth + 1
	top := 0
	bottom := c.termHeight + 1

	if hasV {
		line := make([]rune, 0, c.termWidth+2)
		if hasH {
			line = append(line, '┌')
		}
		for i := 0; i < c.termWidth; i++ {
			line = append(line, '─')
		}
		if hasH {
			line = append(line, '┐')
		}
		startCol := 1
		if hasH {
			startCol = left
		}
		cw.WriteAt(startCol, top, string(line))
		bottomLine := []rune(string(line))
		if hasH {
			bottomLine[0] = '└'
			bottomLine[len(bottomLine)-1] = '┘'
		}
		cw.WriteAt(startCol, bottom, string(bottomLine))
	}

	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position (col, row)
// relative to the canvas origin.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
