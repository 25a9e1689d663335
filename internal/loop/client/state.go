package client

import (
	"time"

	"github.com/tomz197/classicroids/internal/input"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// GameState represents the current screen of a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-session harness state; the game itself lives in loop.Game.
type ClientState struct {
	Input         input.Input
	prevInput     input.Input // Held keys last frame, for command edges
	GameState     GameState
	prevGameState GameState
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}

// shutdownSeconds is how long the shutdown notice stays up.
const shutdownSeconds = config.ShutdownDisplaySeconds
