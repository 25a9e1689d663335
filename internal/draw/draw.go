// Package draw renders the game onto vector surfaces and ANSI terminals.
package draw

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI SGR sequences.
const (
	ColorReset = "\033[0m"
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// appendFg appends a 24-bit foreground colour sequence.
func appendFg(buf []byte, c color.NRGBA) []byte {
	buf = append(buf, "\033[38;2;"...)
	return appendRGB(buf, c)
}

// appendBg appends a 24-bit background colour sequence.
func appendBg(buf []byte, c color.NRGBA) []byte {
	buf = append(buf, "\033[48;2;"...)
	return appendRGB(buf, c)
}

func appendRGB(buf []byte, c color.NRGBA) []byte {
	buf = strconv.AppendInt(buf, int64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.B), 10)
	return append(buf, 'm')
}

// premultiply blends c over black using its alpha; terminals have no opacity.
func premultiply(c color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	return color.NRGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: 255,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
