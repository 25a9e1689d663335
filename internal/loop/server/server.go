// Package server keeps the registry of connected terminal sessions.
// Every session plays its own game; the server hands out games wired to the
// shared high score store and tells sessions when it is shutting down.
package server

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/classicroids/internal/loop"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation for testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	NewGame(handle *ClientHandle) *loop.Game
	Players() int
}

// Options configures a Server.
type Options struct {
	Store  loop.Store  // Shared high score store
	Sounds loop.Sounds // Audio for every game; silent when nil
	Logger *log.Logger
}

// Server tracks connected sessions.
type Server struct {
	clients      map[int]*ClientHandle
	nextClientID int
	registerCh   chan *ClientHandle
	unregisterCh chan int
	mu           sync.RWMutex

	store  loop.Store
	sounds loop.Sounds
	logger *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates a new session server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
		store:        opts.Store,
		sounds:       opts.Sounds,
		logger:       logger,
	}
}

// Run processes registrations until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.processRegistrations()
		}
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the server context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// NewGame creates a fresh single-player game for a session.
func (s *Server) NewGame(handle *ClientHandle) *loop.Game {
	return loop.New(loop.Options{
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano() + int64(handle.ID))),
		Store:  s.store,
		Sounds: s.sounds,
		Logger: s.logger.With("session", handle.ID, "user", handle.Username),
	})
}

// Players returns the number of registered sessions.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// processRegistrations handles pending client registrations/unregistrations.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
			s.logger.Debug("session registered", "session", handle.ID, "user", handle.Username)
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
			s.logger.Debug("session unregistered", "session", clientID)
		default:
			return
		}
	}
}
