package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/classicroids/internal/input"
	"github.com/tomz197/classicroids/internal/loop"
	"github.com/tomz197/classicroids/internal/loop/config"
)

// binding maps physical keys to a command pair.
type binding struct {
	keys    []ebiten.Key
	press   input.Command
	release input.Command
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, press: input.RotateLeftStart, release: input.RotateLeftStop},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, press: input.RotateRightStart, release: input.RotateRightStop},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, press: input.ThrustStart, release: input.ThrustStop},
	{keys: []ebiten.Key{ebiten.KeySpace}, press: input.Fire, release: input.AllowRefire},
}

// Game adapts a loop.Game to ebiten. Each Update advances one tick onto an
// offscreen frame which Draw then presents.
type Game struct {
	game    *loop.Game
	frame   *ebiten.Image
	surface *Surface
}

// NewGame wraps g for ebiten.RunGame.
func NewGame(g *loop.Game) *Game {
	frame := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	return &Game{
		game:    g,
		frame:   frame,
		surface: NewSurface(frame),
	}
}

func (d *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				d.game.Command(b.press)
			}
			if inpututil.IsKeyJustReleased(k) {
				d.game.Command(b.release)
			}
		}
	}

	d.game.Tick(d.surface)
	return nil
}

func (d *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.frame, nil)
}

func (d *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *loop.Game) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(config.FPS)

	// Termination from Update ends RunGame without an error.
	return ebiten.RunGame(NewGame(g))
}
