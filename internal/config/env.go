// Package config provides process-level settings read from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool reads a switch such as ASTEROIDS_SOUND. "0", "off", "false" and
// "no" disable it; anything else, or unset, leaves fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "off", "false", "no":
		return false
	case "1", "on", "true", "yes":
		return true
	}
	return fallback
}

// Settings are the runtime options shared by the entry points.
type Settings struct {
	DBPath  string // SQLite file holding the high score
	Sound   bool   // Play audio cues
	LogPath string // Log file for terminal front ends; empty discards logs
}

// Load reads Settings from ASTEROIDS_DB, ASTEROIDS_SOUND and ASTEROIDS_LOG.
func Load() Settings {
	return Settings{
		DBPath:  GetEnv("ASTEROIDS_DB", defaultDBPath()),
		Sound:   GetEnvBool("ASTEROIDS_SOUND", true),
		LogPath: GetEnv("ASTEROIDS_LOG", ""),
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "asteroids.db"
	}
	return filepath.Join(dir, "classicroids", "asteroids.db")
}
