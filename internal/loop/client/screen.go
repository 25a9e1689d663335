package client

import (
	"fmt"
	"time"

	"github.com/tomz197/classicroids/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch c.state.GameState {
	case GameStatePlaying:
		// One tick per frame: the game renders itself before it moves.
		c.game.Tick(c.surface)
		c.surface.Present(c.chunkWriter)
	default:
		c.canvas.Clear()
		c.canvas.Render(c.chunkWriter)
	}

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	switch {
	case c.state.GameState == GameStateShutdown:
		c.drawShutdownScreen(centerX, centerY)
	case c.state.isInactive:
		c.drawInactivityScreen(centerX, centerY)
	case c.state.GameState == GameStateStart:
		c.drawStartScreen(centerX, centerY)
	}

	return c.chunkWriter.Flush()
}

// writeCentered writes s centred on column centerX and marks the cells for
// repaint so the text does not linger once it is gone.
func (c *Client) writeCentered(centerX, row int, s string) {
	n := len([]rune(s))
	col := centerX - n/2
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, n)
}

// drawInactivityScreen draws the inactivity warning over the game.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`    _   ___ _____ ___ ___  ___ ___ ___  ___ `,
		`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __|`,
		`  / _ \\__ \ | | | _||   / (_) | || |) \__ \`,
		` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/`,
		`                                            `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	// Draw title art centered
	cw := c.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ Classic Asteroids in your terminal ~")

	// Controls section
	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")

	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	prompt := ">>  Press SPACE to Start  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = "                            "
	}
	c.writeCentered(centerX, controlsY+len(controlLines)+2, prompt)

	if players := c.server.Players(); players > 1 {
		c.writeCentered(centerX, controlsY+len(controlLines)+4, fmt.Sprintf("%d pilots online", players))
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
