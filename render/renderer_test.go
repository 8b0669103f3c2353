package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// gridCanvas records cell writes for inspection
type gridCanvas struct {
	w, h  int
	cells [][]rune
	shows int
}

func newGridCanvas(w, h int) *gridCanvas {
	g := &gridCanvas{w: w, h: h}
	g.Clear()
	return g
}

func (g *gridCanvas) SetContent(x, y int, ch rune, _ []rune, _ tcell.Style) {
	if x >= 0 && y >= 0 && x < g.w && y < g.h {
		g.cells[y][x] = ch
	}
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) Clear() {
	g.cells = make([][]rune, g.h)
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", g.w))
	}
}

func (g *gridCanvas) Show() { g.shows++ }

func (g *gridCanvas) row(y int) string { return string(g.cells[y]) }

func (g *gridCanvas) text() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.WriteString(g.row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func baseSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Phase: engine.PhasePlaying,
		Food:  vmath.Point{X: 1000, Y: 500},
		FoodW: 60,
		FoodH: 60,
		Score: 5,
		Level: 2,
	}
}

func TestPlayfieldToCell(t *testing.T) {
	tests := []struct {
		p      vmath.Point
		wx, wy int
	}{
		{vmath.Point{X: 0, Y: 0}, 0, 0},
		{vmath.Point{X: 640, Y: 360}, 64, 36},
		{vmath.Point{X: 1279.9, Y: 719.9}, 127, 71},
		{vmath.Point{X: 1280, Y: 720}, 127, 71},
		{vmath.Point{X: -50, Y: 900}, 0, 71},
	}
	for _, tt := range tests {
		x, y := PlayfieldToCell(tt.p, 128, 72)
		if x != tt.wx || y != tt.wy {
			t.Errorf("PlayfieldToCell(%v) expected (%d,%d), got (%d,%d)", tt.p, tt.wx, tt.wy, x, y)
		}
	}
}

func TestDrawTrailAndHead(t *testing.T) {
	c := newGridCanvas(128, 72)
	r := NewRenderer(c)

	s := baseSnapshot()
	s.Trail = []vmath.Point{{X: 100, Y: 105}, {X: 605, Y: 105}}
	s.Head = s.Trail[1]
	s.HasHead = true
	r.Draw(s, true)

	for x := 10; x < 60; x++ {
		if c.cells[10][x] != glyphTrail {
			t.Fatalf("Expected trail at (%d,10), got %q", x, c.cells[10][x])
		}
	}
	if c.cells[10][60] != glyphHead {
		t.Errorf("Expected head marker at (60,10), got %q", c.cells[10][60])
	}
	if c.cells[11][30] == glyphTrail {
		t.Error("Expected trail to stay on its row")
	}
	if c.shows != 1 {
		t.Errorf("Expected one Show per Draw, got %d", c.shows)
	}
}

func TestDrawFoodAndObstacles(t *testing.T) {
	c := newGridCanvas(128, 72)
	r := NewRenderer(c)

	s := baseSnapshot()
	s.Obstacles = []component.ObstacleComponent{{Rect: vmath.Rect{X: 200, Y: 400, W: 80, H: 80}}}
	r.Draw(s, true)

	if c.cells[50][100] != glyphFood {
		t.Errorf("Expected food at (100,50), got %q", c.cells[50][100])
	}
	if c.cells[50][102] != glyphFood {
		t.Errorf("Expected food disc to span its radius, got %q at (102,50)", c.cells[50][102])
	}
	if c.cells[50][104] == glyphFood {
		t.Error("Expected food disc to end outside its radius")
	}

	if c.cells[40][20] != glyphEdge {
		t.Errorf("Expected obstacle edge at (20,40), got %q", c.cells[40][20])
	}
	if c.cells[48][28] != glyphEdge {
		t.Errorf("Expected obstacle edge at (28,48), got %q", c.cells[48][28])
	}
	if c.cells[44][24] != glyphObstacle {
		t.Errorf("Expected obstacle fill at (24,44), got %q", c.cells[44][24])
	}
}

func TestDrawHUD(t *testing.T) {
	c := newGridCanvas(80, 24)
	NewRenderer(c).Draw(baseSnapshot(), true)

	if !strings.Contains(c.row(1), "Score: 5") {
		t.Errorf("Expected score on row 1, got %q", c.row(1))
	}
	if !strings.Contains(c.row(3), "Level: 2") {
		t.Errorf("Expected level on row 3, got %q", c.row(3))
	}
	if strings.Contains(c.text(), PromptText) {
		t.Error("Expected no prompt while a hand is present")
	}
}

func TestDrawPromptWithoutHand(t *testing.T) {
	c := newGridCanvas(80, 24)
	NewRenderer(c).Draw(baseSnapshot(), false)

	if !strings.Contains(c.row(12), PromptText) {
		t.Errorf("Expected prompt on middle row, got %q", c.row(12))
	}
}

func TestDrawGameOver(t *testing.T) {
	c := newGridCanvas(80, 24)
	s := baseSnapshot()
	s.Phase = engine.PhaseGameOver
	NewRenderer(c).Draw(s, false)

	out := c.text()
	for _, want := range []string{GameOverText, "Your Score: 5", "Level Reached: 2", RestartText} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in game over overlay", want)
		}
	}
	if strings.Contains(out, PromptText) {
		t.Error("Expected game over overlay to replace the prompt")
	}
}

func TestDrawEmptyCanvas(t *testing.T) {
	c := newGridCanvas(0, 0)
	NewRenderer(c).Draw(baseSnapshot(), true)
	if c.shows != 1 {
		t.Errorf("Expected Show on empty canvas, got %d", c.shows)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := baseSnapshot()
	s.Trail = []vmath.Point{{X: 10, Y: 10}, {X: 1270, Y: 710}}
	s.Head = s.Trail[1]
	s.HasHead = true
	NewRenderer(screen).Draw(s, true)

	mainc, _, _, _ := screen.GetContent(79, 23)
	if mainc != glyphHead {
		t.Errorf("Expected head marker in bottom-right cell, got %q", mainc)
	}
}

func TestTrailColorEndpoints(t *testing.T) {
	if TrailColor(0) != RgbTrailTail {
		t.Error("Expected tail color at 0")
	}
	if TrailColor(1) != RgbTrailHead {
		t.Error("Expected head color at 1")
	}
	if TrailColor(-1) != RgbTrailTail || TrailColor(2) != RgbTrailHead {
		t.Error("Expected out-of-range progress to clamp")
	}
}
