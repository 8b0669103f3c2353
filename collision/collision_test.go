package collision

import (
	"testing"

	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/vmath"
)

func TestFoodHit(t *testing.T) {
	food := component.NewFood()
	food.Pos = vmath.Pt(400, 300)

	tests := []struct {
		name  string
		scale float64
		head  vmath.Point
		want  bool
	}{
		{"exact centre", 1.0, vmath.Pt(400, 300), true},
		{"inside 42 radius", 1.0, vmath.Pt(441, 300), true},
		{"on 42 radius", 1.0, vmath.Pt(442, 300), false},
		{"scaled 0.6 hitbox 25.2", 0.6, vmath.Pt(425, 300), true},
		{"outside scaled hitbox", 0.6, vmath.Pt(426, 300), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := food
			f.Resize(tt.scale)
			if got := FoodHit(tt.head, f); got != tt.want {
				t.Errorf("FoodHit(%v) = %v, want %v (hitbox %f)", tt.head, got, tt.want, f.Hitbox())
			}
		})
	}
}

func TestObstacleHit(t *testing.T) {
	obs := []component.ObstacleComponent{
		{Rect: vmath.Rect{X: 200, Y: 200, W: 50, H: 60}},
	}
	if _, ok := ObstacleHit(vmath.Pt(250, 260), obs); !ok {
		t.Error("Expected corner contact to be a hit")
	}
	if _, ok := ObstacleHit(vmath.Pt(251, 230), obs); ok {
		t.Error("Expected point right of the obstacle to miss")
	}
	if _, ok := ObstacleHit(vmath.Pt(0, 0), nil); ok {
		t.Error("Expected no hit with no obstacles")
	}
}

func TestNeckSizeAndTolerance(t *testing.T) {
	tests := []struct {
		speed     float64
		neck      int
		tolerance float64
	}{
		{0, 6, 2},
		{4.9, 6, 2},
		{5, 8, 2},
		{9.9, 8, 2},
		{10, 8, 5},
		{14.9, 8, 5},
		{15, 12, 5},
		{80, 12, 5},
	}
	for _, tt := range tests {
		if got := NeckSize(tt.speed); got != tt.neck {
			t.Errorf("NeckSize(%.1f) = %d, want %d", tt.speed, got, tt.neck)
		}
		if got := Tolerance(tt.speed); got != tt.tolerance {
			t.Errorf("Tolerance(%.1f) = %.0f, want %.0f", tt.speed, got, tt.tolerance)
		}
	}
}

// loop returns a square walk of side 100 starting at (100,100), 10 units per point
func loop() []vmath.Point {
	var pts []vmath.Point
	for x := 100.0; x < 200; x += 10 {
		pts = append(pts, vmath.Pt(x, 100))
	}
	for y := 100.0; y < 200; y += 10 {
		pts = append(pts, vmath.Pt(200, y))
	}
	for x := 200.0; x > 100; x -= 10 {
		pts = append(pts, vmath.Pt(x, 200))
	}
	return pts
}

func TestSelfHitSkippedForShortTrail(t *testing.T) {
	trail := []vmath.Point{vmath.Pt(0, 0), vmath.Pt(10, 0), vmath.Pt(20, 0), vmath.Pt(30, 0), vmath.Pt(40, 0)}
	// Head sits exactly on an old trail point
	if SelfHit(vmath.Pt(0, 0), trail, 0) {
		t.Error("Expected self collision to be skipped below 6 points")
	}
}

func TestSelfHitSkippedWhenNeckCoversTrail(t *testing.T) {
	trail := loop()[:8]
	if SelfHit(trail[0], trail, 20) {
		t.Error("Expected skip when the fast neck (12) exceeds the trail length")
	}
}

func TestSelfHitOnBody(t *testing.T) {
	trail := loop()
	// Head returns to the starting edge of the walk
	if !SelfHit(vmath.Pt(130, 101), trail, 3) {
		t.Error("Expected head touching old body to collide")
	}
}

func TestSelfHitClear(t *testing.T) {
	trail := loop()
	// Well inside the loop, far from every edge including the closing chord
	if SelfHit(vmath.Pt(150, 150), trail, 3) {
		t.Error("Expected no collision in the open interior")
	}
	// Well outside
	if SelfHit(vmath.Pt(400, 400), trail, 3) {
		t.Error("Expected no collision far from the body")
	}
}

func TestSelfHitToleranceWidensWithSpeed(t *testing.T) {
	trail := loop()
	head := vmath.Pt(130, 96) // 4 units above the first edge
	if SelfHit(head, trail, 3) {
		t.Error("Expected miss at slow speed with 2-unit tolerance")
	}
	if !SelfHit(head, trail, 12) {
		t.Error("Expected hit at fast speed with 5-unit tolerance")
	}
}
