package component

import (
	"testing"

	"github.com/lixenwraith/gesture-snake/vmath"
)

func TestFoodResize(t *testing.T) {
	tests := []struct {
		scale float64
		size  int
	}{
		{1.0, 60},
		{0.6, 36},
		{0.7, 42},
		{0.8, 48},
	}

	for _, tt := range tests {
		f := NewFood()
		f.Pos = vmath.Pt(300, 400)
		f.Resize(tt.scale)
		if f.W != tt.size || f.H != tt.size {
			t.Errorf("Scale %.1f: expected %dx%d, got %dx%d", tt.scale, tt.size, tt.size, f.W, f.H)
		}
		if f.Pos != vmath.Pt(300, 400) {
			t.Errorf("Scale %.1f: resize must not move food, got %v", tt.scale, f.Pos)
		}
	}
}

func TestFoodHitbox(t *testing.T) {
	f := NewFood()
	if got := f.Hitbox(); got != 42 {
		t.Errorf("Expected base hitbox 42, got %f", got)
	}

	f.W = 10
	if got := f.Hitbox(); got != 20 {
		t.Errorf("Expected hitbox floor 20, got %f", got)
	}
}

func TestObstacleContainsPromoted(t *testing.T) {
	o := ObstacleComponent{Rect: vmath.Rect{X: 100, Y: 100, W: 50, H: 50}}
	if !o.Contains(vmath.Pt(150, 150)) {
		t.Error("Expected far corner to be inside (inclusive bounds)")
	}
	if o.Contains(vmath.Pt(151, 150)) {
		t.Error("Expected point past right edge to be outside")
	}
}
