package draw

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ChunkWriter collects one frame of terminal output and hands it to the
// underlying writer in writes of at most maxChunkSize bytes. Cursor moves are
// relative to the canvas and shifted by the centering offset.
type ChunkWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter for w with the given canvas offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		w:      w,
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the canvas offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor queues a cursor move to the 1-based canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = append(cw.buf, "\033["...)
	cw.buf = strconv.AppendInt(cw.buf, int64(row+cw.offRow), 10)
	cw.buf = append(cw.buf, ';')
	cw.buf = strconv.AppendInt(cw.buf, int64(col+cw.offCol), 10)
	cw.buf = append(cw.buf, 'H')
}

// Write queues p as is. Canvas.Render writes through here.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt queues s at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, s...)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame and empties the queue.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.w, cw.buf)
	cw.buf = cw.buf[:0]
	return err
}

// writeChunks writes b to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n := min(len(b), maxChunkSize)
		if _, err := w.Write(b[:n]); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
