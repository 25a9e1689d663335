package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/classicroids/internal/audio"
	"github.com/tomz197/classicroids/internal/config"
	"github.com/tomz197/classicroids/internal/loop"
	"github.com/tomz197/classicroids/internal/loop/client"
	"github.com/tomz197/classicroids/internal/loop/server"
	"github.com/tomz197/classicroids/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Load()

	// The terminal belongs to the game, so logs go to a file or nowhere.
	logOut := io.Discard
	if settings.LogPath != "" {
		f, err := os.OpenFile(settings.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "game"})

	var store loop.Store
	db, err := storage.InitSQLite(settings.DBPath)
	if err != nil {
		logger.Warn("high score will not persist", "err", err)
		store = storage.NewMemory()
	} else {
		defer db.Close()
		store = storage.NewSQLite(db)
	}

	sounds := audio.NewSoundManager()
	if settings.Sound {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sounds.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gameServer := server.NewServer(server.Options{Store: store, Sounds: sounds, Logger: logger})
	go gameServer.Run(ctx)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(gameServer, reader, os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "pilot"),
		Logger:   logger,
	})
	return c.Run()
}
