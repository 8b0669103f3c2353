// Package render draws session snapshots onto a terminal cell grid.
//
// The playfield (1280×720 input units) is stretched over the whole screen and
// points are mapped with PlayfieldToCell. Layers are painted back to front:
// background, obstacles, trail, head marker, food, HUD, then either the
// game-over overlay or the idle prompt.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Glyphs
const (
	glyphTrail    = '█'
	glyphHead     = '●'
	glyphFood     = '◆'
	glyphObstacle = '▓'
	glyphEdge     = '░'
)

// Overlay text
const (
	PromptText   = "Show your hand to start!"
	GameOverText = "Game Over"
	RestartText  = "Press 'R' to restart"

	scoreFormat        = "Score: %d"
	levelFormat        = "Level: %d"
	yourScoreFormat    = "Your Score: %d"
	levelReachedFormat = "Level Reached: %d"
)

// Canvas is the subset of tcell.Screen the renderer draws through
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Renderer paints snapshots onto a canvas
type Renderer struct {
	screen Canvas
	width  int
	height int
	sx, sy float64 // Cells per playfield unit
	base   tcell.Style
}

// NewRenderer creates a renderer bound to a canvas
func NewRenderer(screen Canvas) *Renderer {
	r := &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
	r.resize()
	return r
}

func (r *Renderer) resize() {
	r.width, r.height = r.screen.Size()
	r.sx = float64(r.width) / parameter.PlayfieldWidth
	r.sy = float64(r.height) / parameter.PlayfieldHeight
}

// Draw renders one frame; handPresent false shows the idle prompt
func (r *Renderer) Draw(s engine.Snapshot, handPresent bool) {
	r.resize()
	r.screen.Clear()
	if r.width <= 0 || r.height <= 0 {
		r.screen.Show()
		return
	}

	r.fill()
	r.drawObstacles(s)
	r.drawTrail(s)
	r.drawFood(s)
	r.drawHUD(s)

	switch {
	case s.GameOver():
		r.drawGameOver(s)
	case !handPresent:
		r.drawCentered(r.height/2, " "+PromptText+" ", r.base.Foreground(RgbPromptText).Bold(true))
	}

	r.screen.Show()
}

// PlayfieldToCell maps a playfield point onto a w×h grid, clamped to the grid
func PlayfieldToCell(p vmath.Point, w, h int) (int, int) {
	x := int(math.Floor(p.X * float64(w) / parameter.PlayfieldWidth))
	y := int(math.Floor(p.Y * float64(h) / parameter.PlayfieldHeight))
	return min(max(x, 0), w-1), min(max(y, 0), h-1)
}

func (r *Renderer) fill() {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.base)
		}
	}
}

// set writes a cell if it lies on screen
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawObstacles(s engine.Snapshot) {
	fill := r.base.Foreground(RgbObstacle)
	edge := r.base.Foreground(RgbObstacleEdge).Background(RgbObstacle)

	for _, o := range s.Obstacles {
		x0, y0 := PlayfieldToCell(vmath.Point{X: o.X, Y: o.Y}, r.width, r.height)
		x1, y1 := PlayfieldToCell(vmath.Point{X: o.Right(), Y: o.Bottom()}, r.width, r.height)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if x == x0 || x == x1 || y == y0 || y == y1 {
					r.set(x, y, glyphEdge, edge)
				} else {
					r.set(x, y, glyphObstacle, fill)
				}
			}
		}
	}
}

func (r *Renderer) drawTrail(s engine.Snapshot) {
	n := len(s.Trail)
	for i := 1; i < n; i++ {
		style := r.base.Foreground(TrailColor(float64(i) / float64(n-1)))
		a, b := s.Trail[i-1], s.Trail[i]
		vmath.TraverseLine(a.X*r.sx, a.Y*r.sy, b.X*r.sx, b.Y*r.sy, func(x, y int) bool {
			r.set(x, y, glyphTrail, style)
			return true
		})
	}

	if s.HasHead {
		hx, hy := PlayfieldToCell(s.Head, r.width, r.height)
		r.set(hx, hy, glyphHead, r.base.Foreground(RgbHeadMarker).Bold(true))
	}
}

// drawFood paints an ellipse over the food footprint, at least one cell
func (r *Renderer) drawFood(s engine.Snapshot) {
	style := r.base.Foreground(RgbFood)
	cx, cy := s.Food.X*r.sx, s.Food.Y*r.sy
	rx := float64(s.FoodW) / 2 * r.sx
	ry := float64(s.FoodH) / 2 * r.sy

	fx, fy := PlayfieldToCell(s.Food, r.width, r.height)
	r.set(fx, fy, glyphFood, style)
	if rx <= 0 || ry <= 0 {
		return
	}

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				r.set(x, y, glyphFood, style)
			}
		}
	}
}

func (r *Renderer) drawHUD(s engine.Snapshot) {
	plate := r.base.Foreground(RgbHUDText).Background(RgbHUDPlate)
	r.drawText(2, 1, " "+fmt.Sprintf(scoreFormat, s.Score)+" ", plate.Bold(true))
	r.drawText(2, 3, " "+fmt.Sprintf(levelFormat, s.Level)+" ", plate)
}

func (r *Renderer) drawGameOver(s engine.Snapshot) {
	style := r.base.Foreground(RgbOverlayFg).Background(RgbOverlayBg)
	lines := []string{
		GameOverText,
		fmt.Sprintf(yourScoreFormat, s.Score),
		fmt.Sprintf(levelReachedFormat, s.Level),
		RestartText,
	}

	top := r.height/2 - len(lines)
	for i, line := range lines {
		st := style
		if i == 0 {
			st = st.Bold(true)
		}
		r.drawCentered(top+i*2, " "+line+" ", st)
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - len([]rune(text))) / 2
	r.drawText(max(x, 0), y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, style)
	}
}
