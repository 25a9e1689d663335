package loop

import (
	"errors"
	"image/color"
	"io"
	"math"
	"math/rand"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/input"
	"github.com/tomz197/classicroids/internal/loop/config"
	"github.com/tomz197/classicroids/internal/object"
	"github.com/tomz197/classicroids/internal/storage"
)

// recorder is a Surface that remembers what was drawn.
type recorder struct {
	draw.Path
	strokes int
	circles int
	rects   int
	texts   []string
	moves   []draw.Point
}

func (r *recorder) MoveTo(x, y float64) {
	r.moves = append(r.moves, draw.Point{X: x, Y: y})
	r.Path.MoveTo(x, y)
}

func (r *recorder) Stroke(color.NRGBA, float64)                   { r.strokes++ }
func (r *recorder) FillCircle(_, _, _ float64, _ color.NRGBA)     { r.circles++ }
func (r *recorder) FillRect(_, _, _, _ float64, _ color.NRGBA)    { r.rects++ }
func (r *recorder) Text(s string, _, _ float64, _ draw.TextStyle) { r.texts = append(r.texts, s) }

type countingSounds struct {
	fire, hit, explode int
}

func (c *countingSounds) Fire()    { c.fire++ }
func (c *countingSounds) Hit()     { c.hit++ }
func (c *countingSounds) Explode() { c.explode++ }

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk on fire") }
func (failingStore) Raise(string, int) error          { return errors.New("disk on fire") }

func newTestGame(t *testing.T, store Store, sounds Sounds) *Game {
	t.Helper()
	return New(Options{
		Rand:   rand.New(rand.NewSource(1)),
		Store:  store,
		Sounds: sounds,
		Logger: log.New(io.Discard),
	})
}

func rock(x, y float64, tier object.Tier) *object.Asteroid {
	return &object.Asteroid{X: x, Y: y, Tier: tier, R: tier.Radius()}
}

func still(x, y float64) *object.Laser {
	return &object.Laser{X: x, Y: y}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, nil, nil)

	if g.Level() != 0 || g.Lives() != config.InitialLives || g.Score() != 0 {
		t.Errorf("level=%d lives=%d score=%d, want 0/%d/0", g.Level(), g.Lives(), g.Score(), config.InitialLives)
	}
	if n := len(g.Asteroids()); n != config.AsteroidsNum {
		t.Errorf("asteroids = %d, want %d", n, config.AsteroidsNum)
	}
	if msg, alpha := g.Status(); msg != "Level 1" || alpha != 1 {
		t.Errorf("status = %q %v, want \"Level 1\" 1", msg, alpha)
	}
	if g.GameOver() {
		t.Error("new game should not be over")
	}
}

func TestClearingFieldAdvancesLevel(t *testing.T) {
	g := newTestGame(t, nil, nil)
	g.roids = []*object.Asteroid{
		rock(100, 100, object.TierSmall),
		rock(700, 100, object.TierSmall),
		rock(100, 500, object.TierSmall),
	}
	g.ship.Lasers = []*object.Laser{still(100, 100), still(700, 100), still(100, 500)}

	g.Tick(&recorder{})

	if g.Score() != 3*config.ScoreSmallAsteroid {
		t.Errorf("score = %d, want %d", g.Score(), 3*config.ScoreSmallAsteroid)
	}
	if g.Level() != 1 {
		t.Fatalf("level = %d, want 1", g.Level())
	}
	roids := g.Asteroids()
	if len(roids) != config.AsteroidsNum+1 {
		t.Errorf("asteroids = %d, want %d", len(roids), config.AsteroidsNum+1)
	}
	for _, a := range roids {
		if a.Tier != object.TierLarge {
			t.Errorf("new level asteroid tier = %v, want large", a.Tier)
		}
	}
	if msg, _ := g.Status(); msg != "Level 2" {
		t.Errorf("status = %q, want \"Level 2\"", msg)
	}
}

func TestDestroyLargeSplits(t *testing.T) {
	sounds := &countingSounds{}
	g := newTestGame(t, nil, sounds)
	far := rock(700, 500, object.TierSmall)
	g.roids = []*object.Asteroid{rock(100, 100, object.TierLarge), far}
	g.ship.Lasers = []*object.Laser{still(100, 100)}

	g.Tick(&recorder{})

	if g.Score() != config.ScoreLargeAsteroid {
		t.Errorf("score = %d, want %d", g.Score(), config.ScoreLargeAsteroid)
	}
	roids := g.Asteroids()
	if len(roids) != 3 || roids[0] != far {
		t.Fatalf("asteroids = %d, want the survivor followed by two fragments", len(roids))
	}
	for _, a := range roids[1:] {
		if a.Tier != object.TierMedium {
			t.Errorf("fragment tier = %v, want medium", a.Tier)
		}
	}
	if !g.ship.Lasers[0].Exploding() {
		t.Error("laser should be exploding after a hit")
	}
	if sounds.hit != 1 {
		t.Errorf("hit sounds = %d, want 1", sounds.hit)
	}
	if len(g.debris) == 0 {
		t.Error("destroyed asteroid should leave debris")
	}
}

func TestDestroySmallLeavesNothing(t *testing.T) {
	g := newTestGame(t, nil, nil)
	g.roids = []*object.Asteroid{rock(100, 100, object.TierSmall), rock(700, 500, object.TierLarge)}
	g.ship.Lasers = []*object.Laser{still(100, 100)}

	g.Tick(&recorder{})

	if g.Score() != config.ScoreSmallAsteroid {
		t.Errorf("score = %d, want %d", g.Score(), config.ScoreSmallAsteroid)
	}
	if n := len(g.Asteroids()); n != 1 {
		t.Errorf("asteroids = %d, want 1", n)
	}
}

func TestLaserHitsOnlyOneAsteroid(t *testing.T) {
	g := newTestGame(t, nil, nil)
	first := rock(100, 100, object.TierSmall)
	second := rock(105, 100, object.TierSmall)
	g.roids = []*object.Asteroid{first, second, rock(700, 500, object.TierLarge)}
	g.ship.Lasers = []*object.Laser{still(102, 100)}

	g.Tick(&recorder{})

	if g.Score() != config.ScoreSmallAsteroid {
		t.Errorf("score = %d, want one small asteroid", g.Score())
	}
	if !slices.Contains(g.Asteroids(), first) || slices.Contains(g.Asteroids(), second) {
		t.Error("the later asteroid should take the hit")
	}
}

func TestAsteroidTakesOneLaser(t *testing.T) {
	g := newTestGame(t, nil, nil)
	g.roids = []*object.Asteroid{rock(100, 100, object.TierSmall), rock(700, 500, object.TierLarge)}
	g.ship.Lasers = []*object.Laser{still(100, 100), still(101, 100)}

	g.Tick(&recorder{})

	if g.ship.Lasers[0].Exploding() || !g.ship.Lasers[1].Exploding() {
		t.Error("only the most recent laser should be spent")
	}
}

func TestFireCap(t *testing.T) {
	sounds := &countingSounds{}
	g := newTestGame(t, nil, sounds)
	for i := 0; i < config.MaxLasers; i++ {
		g.Command(input.Fire)
		g.Command(input.AllowRefire)
	}
	if n := len(g.ship.Lasers); n != config.MaxLasers {
		t.Fatalf("lasers = %d, want %d", n, config.MaxLasers)
	}

	g.Command(input.Fire)
	if n := len(g.ship.Lasers); n != config.MaxLasers {
		t.Errorf("lasers = %d after capped fire, want %d", n, config.MaxLasers)
	}
	if g.ship.CanShoot {
		t.Error("capped fire should still consume the latch")
	}
	if sounds.fire != config.MaxLasers {
		t.Errorf("fire sounds = %d, want %d", sounds.fire, config.MaxLasers)
	}
}

func TestLaserCapHoldsUnderRandomInput(t *testing.T) {
	g := newTestGame(t, nil, nil)
	rng := rand.New(rand.NewSource(42))
	cmds := []input.Command{
		input.Fire, input.AllowRefire, input.RotateLeftStart, input.RotateLeftStop,
		input.ThrustStart, input.ThrustStop,
	}
	rec := &recorder{}
	for tick := 0; tick < 600; tick++ {
		for i := rng.Intn(4); i > 0; i-- {
			g.Command(cmds[rng.Intn(len(cmds))])
		}
		g.Tick(rec)
		if n := len(g.ship.Lasers); n > config.MaxLasers {
			t.Fatalf("tick %d: %d lasers", tick, n)
		}
		if g.Lives() < 0 || g.Score() < 0 {
			t.Fatalf("tick %d: lives=%d score=%d", tick, g.Lives(), g.Score())
		}
	}
}

func TestInvulnerableShipIgnoresAsteroids(t *testing.T) {
	g := newTestGame(t, nil, nil)
	g.roids = []*object.Asteroid{rock(g.ship.X, g.ship.Y, object.TierLarge)}

	g.Tick(&recorder{})

	if g.ship.Exploding() {
		t.Error("invulnerable ship should not explode")
	}
	if len(g.Asteroids()) != 1 || g.Score() != 0 {
		t.Error("asteroid should survive touching an invulnerable ship")
	}
}

func TestShipCollisionCostsLife(t *testing.T) {
	sounds := &countingSounds{}
	g := newTestGame(t, nil, sounds)
	g.ship.BlinkNum = 0
	g.roids = []*object.Asteroid{rock(g.ship.X, g.ship.Y, object.TierLarge)}

	rec := &recorder{}
	g.Tick(rec)

	if !g.ship.Exploding() {
		t.Fatal("ship should explode on contact")
	}
	if sounds.explode != 1 {
		t.Errorf("explode sounds = %d, want 1", sounds.explode)
	}
	if g.Score() != config.ScoreLargeAsteroid || len(g.Asteroids()) != 2 {
		t.Errorf("score=%d asteroids=%d, want the asteroid destroyed", g.Score(), len(g.Asteroids()))
	}

	g.Command(input.Fire)
	if len(g.ship.Lasers) != 0 {
		t.Error("commands should be ignored while exploding")
	}

	for i := 1; i < config.ShipExplodeTicks; i++ {
		g.Tick(rec)
	}
	if g.Lives() != config.InitialLives {
		t.Fatalf("life lost before the explosion ended")
	}
	g.Tick(rec)
	if g.Lives() != config.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", g.Lives(), config.InitialLives-1)
	}
	ship := g.Ship()
	if ship.Exploding() || !ship.Invulnerable() || ship.X != 400 || ship.Y != 300 {
		t.Errorf("want a fresh invulnerable ship at the centre, got %+v", ship)
	}
}

func TestGameOverRestarts(t *testing.T) {
	g := newTestGame(t, nil, nil)
	g.lives = 1
	g.ship.BlinkNum = 0
	g.roids = []*object.Asteroid{rock(g.ship.X, g.ship.Y, object.TierMedium), rock(700, 500, object.TierLarge)}

	rec := &recorder{}
	for i := 0; i <= config.ShipExplodeTicks; i++ {
		g.Tick(rec)
	}
	if !g.GameOver() || g.Lives() != 0 {
		t.Fatalf("want game over with no lives, got over=%v lives=%d", g.GameOver(), g.Lives())
	}
	if msg, _ := g.Status(); msg != "Game Over" {
		t.Errorf("status = %q, want \"Game Over\"", msg)
	}
	g.Command(input.Fire)
	if len(g.ship.Lasers) != 0 {
		t.Error("commands should be ignored after game over")
	}

	for i := 0; g.GameOver(); i++ {
		if i > 200 {
			t.Fatal("game never restarted")
		}
		g.Tick(rec)
	}
	if g.Level() != 0 || g.Lives() != config.InitialLives || g.Score() != 0 {
		t.Errorf("level=%d lives=%d score=%d after restart", g.Level(), g.Lives(), g.Score())
	}
	if msg, _ := g.Status(); msg != "Level 1" {
		t.Errorf("status = %q, want \"Level 1\"", msg)
	}
	if g.HighScore() != config.ScoreMediumAsteroid {
		t.Errorf("high score = %d, want %d", g.HighScore(), config.ScoreMediumAsteroid)
	}
}

func TestHighScorePersists(t *testing.T) {
	store := storage.NewMemory()

	g := newTestGame(t, store, nil)
	g.roids = []*object.Asteroid{rock(100, 100, object.TierSmall), rock(700, 500, object.TierLarge)}
	g.ship.Lasers = []*object.Laser{still(100, 100)}
	g.Tick(&recorder{})

	if v, ok, _ := store.Get(config.HighScoreKey); !ok || v != "100" {
		t.Fatalf("stored high score = %q (%v), want \"100\"", v, ok)
	}

	g2 := newTestGame(t, store, nil)
	if g2.HighScore() != 100 {
		t.Fatalf("high score = %d, want 100", g2.HighScore())
	}
	g2.roids = []*object.Asteroid{rock(100, 100, object.TierLarge), rock(700, 500, object.TierLarge)}
	g2.ship.Lasers = []*object.Laser{still(100, 100)}
	g2.Tick(&recorder{})
	if v, _, _ := store.Get(config.HighScoreKey); v != "100" {
		t.Errorf("lower score overwrote the best: %q", v)
	}
}

func TestSharedStoreKeepsBest(t *testing.T) {
	db, err := storage.InitSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("InitSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stores := []struct {
		name  string
		store Store
	}{
		{"memory", storage.NewMemory()},
		{"sqlite", storage.NewSQLite(db)},
	}
	for _, tt := range stores {
		t.Run(tt.name, func(t *testing.T) {
			// Both sessions start from the same empty best.
			a := newTestGame(t, tt.store, nil)
			b := newTestGame(t, tt.store, nil)

			b.roids = []*object.Asteroid{
				rock(100, 100, object.TierSmall),
				rock(300, 100, object.TierSmall),
				rock(700, 500, object.TierLarge),
			}
			b.ship.Lasers = []*object.Laser{still(100, 100), still(300, 100)}
			b.Tick(&recorder{})

			a.roids = []*object.Asteroid{rock(100, 100, object.TierSmall), rock(700, 500, object.TierLarge)}
			a.ship.Lasers = []*object.Laser{still(100, 100)}
			a.Tick(&recorder{})

			if a.Score() != 100 || b.Score() != 200 {
				t.Fatalf("scores a=%d b=%d, want 100 and 200", a.Score(), b.Score())
			}
			if v, _, _ := tt.store.Get(config.HighScoreKey); v != "200" {
				t.Errorf("stored best = %q after a lower score, want \"200\"", v)
			}
			if g := newTestGame(t, tt.store, nil); g.HighScore() != 200 {
				t.Errorf("next game best = %d, want 200", g.HighScore())
			}
		})
	}
}

func TestHighScoreTolerance(t *testing.T) {
	for _, v := range []string{"garbage", "-5", ""} {
		store := storage.NewMemory()
		store.Set(config.HighScoreKey, v)
		if g := newTestGame(t, store, nil); g.HighScore() != 0 {
			t.Errorf("stored %q: high score = %d, want 0", v, g.HighScore())
		}
	}

	g := newTestGame(t, failingStore{}, nil)
	if g.HighScore() != 0 {
		t.Errorf("failing store: high score = %d, want 0", g.HighScore())
	}
	g.addScore(50)
	if g.HighScore() != 50 {
		t.Errorf("high score = %d, want 50 despite the store failing", g.HighScore())
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, nil, nil)
	rec := &recorder{}
	g.render(rec)

	for _, want := range []string{"0", "BEST 0", "Level 1"} {
		if !slices.Contains(rec.texts, want) {
			t.Errorf("texts %q missing %q", rec.texts, want)
		}
	}
	// Ship, asteroids and one icon per life
	if want := 1 + len(g.Asteroids()) + g.Lives(); rec.strokes != want {
		t.Errorf("strokes = %d, want %d", rec.strokes, want)
	}
	if rec.rects != 1 {
		t.Errorf("rects = %d, want the background only", rec.rects)
	}
}

func TestRenderBoundingCircles(t *testing.T) {
	g := New(Options{Rand: rand.New(rand.NewSource(1)), Logger: log.New(io.Discard), ShowBounding: true})
	rec := &recorder{}
	g.render(rec)

	if want := 2*(1+len(g.Asteroids())) + g.Lives(); rec.strokes != want {
		t.Errorf("strokes = %d, want %d", rec.strokes, want)
	}
}

func TestRenderLifeIcons(t *testing.T) {
	g := newTestGame(t, nil, nil)
	rec := &recorder{}
	g.render(rec)

	// Icons point up, so each one starts at its nose above the icon row.
	noseY := config.ShipSize - 4.0/3.0*g.ship.R
	var xs []float64
	for _, p := range rec.moves {
		if math.Abs(p.Y-noseY) < 1e-9 {
			xs = append(xs, p.X)
		}
	}
	if len(xs) != g.Lives() {
		t.Fatalf("found %d life icons, want %d", len(xs), g.Lives())
	}
	for i, x := range xs {
		if want := config.ShipSize + float64(i)*config.ShipSize*1.5; math.Abs(x-want) > 1e-9 {
			t.Errorf("icon %d at x=%v, want %v", i, x, want)
		}
	}
}
