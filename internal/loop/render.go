package loop

import (
	"math"
	"strconv"

	"github.com/tomz197/classicroids/internal/draw"
	"github.com/tomz197/classicroids/internal/loop/config"
	"github.com/tomz197/classicroids/internal/object"
)

// render draws one frame of the current state. It does not mutate the game.
func (g *Game) render(s draw.Surface) {
	w, h := g.screen.Width, g.screen.Height
	ship := g.ship

	s.FillRect(0, 0, w, h, draw.Black)

	ship.Draw(s)
	for _, a := range g.roids {
		a.Draw(s)
	}

	if g.showBounding {
		if !ship.Dead {
			object.StrokeCircle(s, ship.X, ship.Y, ship.R, draw.Lime, 1)
		}
		for _, a := range g.roids {
			object.StrokeCircle(s, a.X, a.Y, a.R, draw.Lime, 1)
		}
	}
	if g.showCenterDot {
		s.FillRect(ship.X-1, ship.Y-1, 2, 2, draw.Red)
	}

	for _, l := range ship.Lasers {
		l.Draw(s, ship.R)
	}
	for _, p := range g.debris {
		p.Draw(s)
	}

	g.text.Draw(s, g.screen)

	// Lives
	for i := 0; i < g.lives; i++ {
		c := draw.White
		if ship.Exploding() && i == g.lives-1 {
			c = draw.Red
		}
		x := config.ShipSize + float64(i)*config.ShipSize*1.5
		object.DrawShipOutline(s, x, config.ShipSize, ship.R, math.Pi/2, c)
	}

	s.Text(strconv.Itoa(g.score), w-config.ShipSize/2, config.ShipSize, draw.TextStyle{
		Align:    draw.AlignRight,
		Baseline: draw.BaselineMiddle,
		Size:     config.TextSize,
		Color:    draw.White,
	})
	s.Text("BEST "+strconv.Itoa(g.highScore), w/2, config.ShipSize, draw.TextStyle{
		Align:    draw.AlignCenter,
		Baseline: draw.BaselineMiddle,
		Size:     config.TextSize * 0.75,
		Color:    draw.White,
	})
}
