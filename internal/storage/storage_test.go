package storage

import (
	"path/filepath"
	"testing"
)

type kvStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Raise(key string, value int) error
}

func exerciseStore(t *testing.T, s kvStore) {
	t.Helper()

	if _, ok, err := s.Get("highscore"); err != nil || ok {
		t.Fatalf("Get on empty store = (%v, %v), want not found", ok, err)
	}
	if err := s.Set("highscore", "120"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("highscore", "340"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := s.Get("highscore")
	if err != nil || !ok || v != "340" {
		t.Errorf("Get = (%q, %v, %v), want (\"340\", true, nil)", v, ok, err)
	}

	steps := []struct {
		raise int
		want  string
	}{
		{200, "200"},
		{100, "200"},
		{200, "200"},
		{300, "300"},
	}
	for _, step := range steps {
		if err := s.Raise("best", step.raise); err != nil {
			t.Fatalf("Raise(%d): %v", step.raise, err)
		}
		if v, _, _ := s.Get("best"); v != step.want {
			t.Errorf("after Raise(%d) best = %q, want %q", step.raise, v, step.want)
		}
	}

	// A value that is not a number is replaced by any score.
	if err := s.Set("best", "garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Raise("best", 5); err != nil {
		t.Fatalf("Raise: %v", err)
	}
	if v, _, _ := s.Get("best"); v != "5" {
		t.Errorf("best = %q, want \"5\"", v)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "asteroids.db")
	db, err := InitSQLite(path)
	if err != nil {
		t.Fatalf("InitSQLite: %v", err)
	}
	exerciseStore(t, NewSQLite(db))
	db.Close()

	// Values survive reopening the file.
	db, err = InitSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	v, ok, err := NewSQLite(db).Get("highscore")
	if err != nil || !ok || v != "340" {
		t.Errorf("after reopen Get = (%q, %v, %v), want \"340\"", v, ok, err)
	}
}
