// Package input turns raw terminal bytes into held keys and game commands.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send no key-up events, so holding relies on key auto-repeat.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Space   bool
	Enter   bool
	Closed  bool // The underlying reader hit EOF or an error
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	buf    []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset forgets all held keys, e.g. when switching between screens.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	buf := s.buf[:0]

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	s.buf = buf

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		// Single byte handling - update key state
		applyByteToState(&s.state, b, now)
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Closed:  s.closed,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
