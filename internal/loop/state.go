package loop

import (
	"strconv"

	"github.com/tomz197/classicroids/internal/loop/config"
)

// addScore adds points and persists a new best.
func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
		g.saveHighScore()
	}
}

// loadHighScore reads the persisted best. Store errors are logged and read as 0.
func (g *Game) loadHighScore() int {
	if g.store == nil {
		return g.highScore
	}
	value, ok, err := g.store.Get(config.HighScoreKey)
	if err != nil {
		g.logger.Warn("failed to read high score", "err", err)
		return g.highScore
	}
	if !ok {
		return 0
	}
	return parseHighScore(value)
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Raise(config.HighScoreKey, g.highScore); err != nil {
		g.logger.Warn("failed to save high score", "err", err)
	}
}

// parseHighScore tolerates garbage: anything but a non-negative integer is 0.
func parseHighScore(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
