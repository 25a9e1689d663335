package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/classicroids/internal/audio"
	"github.com/tomz197/classicroids/internal/config"
	"github.com/tomz197/classicroids/internal/desktop"
	"github.com/tomz197/classicroids/internal/loop"
	"github.com/tomz197/classicroids/internal/storage"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "desktop"})
	if err := run(logger); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	settings := config.Load()
	opts := loop.Options{Logger: logger}

	db, err := storage.InitSQLite(settings.DBPath)
	if err != nil {
		logger.Warn("high score will not persist", "err", err)
		opts.Store = storage.NewMemory()
	} else {
		defer db.Close()
		opts.Store = storage.NewSQLite(db)
	}

	sounds := audio.NewSoundManager()
	if settings.Sound {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sounds.Cleanup()
	opts.Sounds = sounds

	return desktop.Run(loop.New(opts))
}
