package config

import (
	"strings"
	"testing"
)

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"0", true, false},
		{"off", true, false},
		{" FALSE ", true, false},
		{"yes", false, true},
		{"1", false, true},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("ASTEROIDS_TEST_BOOL", tt.value)
		if got := GetEnvBool("ASTEROIDS_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
	if !GetEnvBool("ASTEROIDS_TEST_UNSET", true) {
		t.Error("unset variable should return the fallback")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("ASTEROIDS_DB", "/tmp/scores.db")
	t.Setenv("ASTEROIDS_SOUND", "off")
	t.Setenv("ASTEROIDS_LOG", "/tmp/asteroids.log")

	s := Load()
	if s.DBPath != "/tmp/scores.db" || s.Sound || s.LogPath != "/tmp/asteroids.log" {
		t.Errorf("Load = %+v", s)
	}
}

func TestDefaultDBPath(t *testing.T) {
	if p := defaultDBPath(); !strings.HasSuffix(p, "asteroids.db") {
		t.Errorf("defaultDBPath = %q", p)
	}
}
