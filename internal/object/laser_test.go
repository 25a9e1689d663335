package object

import (
	"math"
	"testing"

	"github.com/tomz197/classicroids/internal/loop/config"
)

func TestLaserTravelLimit(t *testing.T) {
	l := NewLaser(400, 300, 0)
	step := config.LaserSpeed / config.FPS
	limit := config.LaserTravel * testScreen.Width

	ticks := 0
	for !l.Update(testScreen) {
		ticks++
		if ticks > 1000 {
			t.Fatal("laser never expired")
		}
	}
	// The laser is removed on the first update after it passes the limit.
	want := int(math.Floor(limit/step)) + 1
	if ticks != want {
		t.Errorf("laser lived %d ticks, want %d", ticks, want)
	}
}

func TestLaserHardWrap(t *testing.T) {
	l := &Laser{X: 799, Y: 100, XV: 5}
	l.Update(testScreen)
	if l.X != 0 || l.Y != 100 {
		t.Errorf("wrapped to (%v, %v), want (0, 100)", l.X, l.Y)
	}

	l = &Laser{X: 50, Y: 2, YV: -5}
	l.Update(testScreen)
	if l.X != 50 || l.Y != testScreen.Height {
		t.Errorf("wrapped to (%v, %v), want (50, %v)", l.X, l.Y, testScreen.Height)
	}
}

func TestLaserExplosion(t *testing.T) {
	l := NewLaser(100, 100, 0)
	l.Explode()
	if !l.Exploding() {
		t.Fatal("laser should be exploding")
	}
	for i := 1; i < config.LaserExplodeTicks; i++ {
		if l.Update(testScreen) {
			t.Fatalf("laser removed early at tick %d", i)
		}
		if l.X != 100 {
			t.Fatal("exploding laser should not move")
		}
	}
	if !l.Update(testScreen) {
		t.Error("laser should be removed when its flash ends")
	}
}
