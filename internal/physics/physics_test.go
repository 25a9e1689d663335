package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := DistanceSquared(1, 1, 4, 5); d != 25 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
	if s := Speed(-6, 8); s != 10 {
		t.Errorf("Speed = %v, want 10", s)
	}
}

func TestPointInCircleIsStrict(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 10, 10, true},
		{"inside", 14, 10, true},
		{"on edge", 15, 10, false},
		{"outside", 16, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.px, tt.py, 10, 10, 5); got != tt.want {
				t.Errorf("PointInCircle(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 10, 15, 0, 10) {
		t.Error("circles 15 apart with radii 10+10 should overlap")
	}
	if CirclesOverlap(0, 0, 10, 20, 0, 10) {
		t.Error("touching circles should not overlap")
	}
	if CirclesOverlap(0, 0, 1, 0, math.Sqrt(8), 1) {
		t.Error("distant circles should not overlap")
	}
}
