// Package loop provides the game simulation: one Game advanced a tick at a time.
package loop

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/input"
	"github.com/tomz197/classicroids/internal/loop/config"
	"github.com/tomz197/classicroids/internal/object"
	"github.com/tomz197/classicroids/internal/physics"
)

// Sounds plays the game's cues. Calls must not block.
type Sounds interface {
	Fire()
	Hit()
	Explode()
}

// Store is a durable string key-value store. Raise stores value under key only
// if it exceeds the integer already stored there, so concurrent games sharing a
// store never lower it.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Raise(key string, value int) error
}

// Options configures a Game. Zero values pick defaults.
type Options struct {
	Rand   *rand.Rand  // Source of randomness; seeded from the clock when nil
	Store  Store       // High score persistence; none when nil
	Sounds Sounds      // Audio cues; silent when nil
	Logger *log.Logger // Defaults to log.Default()

	ShowBounding  bool // Draw collision circles
	ShowCenterDot bool // Draw the ship's centre
}

// Game owns all state of one single-player run and advances it one tick at a time.
// It is not safe for concurrent use.
type Game struct {
	screen  object.Screen
	rng     *rand.Rand
	store   Store
	sounds  Sounds
	logger  *log.Logger
	spawner *object.AsteroidSpawner

	showBounding  bool
	showCenterDot bool

	ship   *object.Ship
	roids  []*object.Asteroid
	debris []*object.Particle
	text   object.StatusText

	level     int
	lives     int
	score     int
	highScore int

	// Collision scratch, reused every tick
	grid       *physics.SpatialGrid
	candidates []int
	removed    []bool
	spawned    []*object.Asteroid
}

// laserGridCell is the broad-phase cell size; it must cover the largest asteroid radius.
const laserGridCell = config.AsteroidSize/2 + config.ShipSize/2

// New creates a game and starts a fresh run at level 0.
func New(opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	g := &Game{
		screen:        screen,
		rng:           rng,
		store:         opts.Store,
		sounds:        sounds,
		logger:        logger,
		spawner:       object.NewAsteroidSpawner(rng, screen),
		showBounding:  config.ShowBounding || opts.ShowBounding,
		showCenterDot: config.ShowCenterDot || opts.ShowCenterDot,
		grid:          physics.NewSpatialGrid(screen.Width, screen.Height, laserGridCell),
	}
	g.newGame()
	return g
}

// Command applies one control command to the ship.
// Commands are ignored while the ship is exploding or the run is over.
func (g *Game) Command(cmd input.Command) {
	if g.ship.Dead || g.ship.Exploding() {
		return
	}
	if g.ship.Apply(cmd) {
		g.sounds.Fire()
	}
}

// Tick renders the current state onto s and then advances the simulation one step.
func (g *Game) Tick(s draw.Surface) {
	g.render(s)

	g.text.Fade()
	if !g.text.Visible() && g.ship.Dead {
		g.newGame()
		return
	}

	ship := g.ship
	ship.Accelerate()
	ship.CountBlink()

	g.detectLaserHits()

	if !ship.Exploding() {
		g.detectShipHit()
		ship.Move()
	} else if ship.CountExplosion() {
		g.loseLife()
	}

	ship = g.ship
	g.screen.WrapPosition(&ship.X, &ship.Y, ship.R)
	ship.UpdateLasers(g.screen)
	for _, a := range g.roids {
		a.Update(g.screen)
	}
	g.updateDebris()

	if len(g.roids) == 0 {
		g.level++
		g.logger.Debug("level cleared", "level", g.level, "score", g.score)
		g.newLevel()
	}
}

// newGame resets the run: level 0, full lives, zero score, a fresh ship and field.
func (g *Game) newGame() {
	g.level = 0
	g.lives = config.InitialLives
	g.score = 0
	g.ship = object.NewShip(g.screen)
	g.highScore = g.loadHighScore()
	g.releaseDebris()
	g.newLevel()
}

// newLevel announces the level and spawns its field around the current ship.
func (g *Game) newLevel() {
	g.text.Show("Level " + strconv.Itoa(g.level+1))
	g.roids = g.spawner.Belt(g.level, g.ship)
}

// loseLife runs when the ship's explosion ends.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.ship.Dead = true
		g.text.Show("Game Over")
		g.logger.Info("game over", "score", g.score, "level", g.level+1, "best", g.highScore)
		return
	}
	g.ship = object.NewShip(g.screen)
}

func (g *Game) updateDebris() {
	kept := g.debris[:0]
	for _, p := range g.debris {
		if p.Update() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(g.debris[len(kept):])
	g.debris = kept
}

func (g *Game) releaseDebris() {
	for _, p := range g.debris {
		p.Release()
	}
	clear(g.debris)
	g.debris = g.debris[:0]
}

// Level returns the 0-based level index.
func (g *Game) Level() int { return g.level }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen so far.
func (g *Game) HighScore() int { return g.highScore }

// GameOver reports whether the run has ended and is waiting for the status text to fade.
func (g *Game) GameOver() bool { return g.ship.Dead }

// Ship returns the current ship.
func (g *Game) Ship() *object.Ship { return g.ship }

// Asteroids returns the active asteroids. The slice is owned by the game.
func (g *Game) Asteroids() []*object.Asteroid { return g.roids }

// Status returns the status message and its opacity.
func (g *Game) Status() (string, float64) { return g.text.Value, g.text.Alpha }

type silent struct{}

func (silent) Fire()    {}
func (silent) Hit()     {}
func (silent) Explode() {}
