// Package input turns terminal events into playfield points and host actions.
package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// PointSource reports the most recent tracked position; false means no hand is present
type PointSource interface {
	Latest() (vmath.Point, bool)
}

// MouseSource tracks the terminal mouse as a stand-in for a hand tracker
type MouseSource struct {
	mu      sync.Mutex
	width   int
	height  int
	point   vmath.Point
	present bool
}

// NewMouseSource creates a source for a screen of w×h cells
func NewMouseSource(w, h int) *MouseSource {
	m := &MouseSource{}
	m.SetSize(w, h)
	return m
}

// SetSize updates the cell grid used for coordinate mapping
func (m *MouseSource) SetSize(w, h int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = max(w, 1)
	m.height = max(h, 1)
}

// HandleEvent consumes resize, mouse and focus events; it reports whether the
// event was used
func (m *MouseSource) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		m.SetSize(w, h)
		return true

	case *tcell.EventMouse:
		x, y := ev.Position()
		m.mu.Lock()
		m.point = CellToPlayfield(x, y, m.width, m.height)
		m.present = true
		m.mu.Unlock()
		return true

	case *tcell.EventFocus:
		if !ev.Focused {
			m.mu.Lock()
			m.present = false
			m.mu.Unlock()
		}
		return true
	}
	return false
}

// Latest returns the last mouse position in playfield coordinates
func (m *MouseSource) Latest() (vmath.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.point, m.present
}

// CellToPlayfield maps the centre of cell (x, y) on a w×h grid to playfield coordinates
func CellToPlayfield(x, y, w, h int) vmath.Point {
	return vmath.Point{
		X: (float64(x) + 0.5) * parameter.PlayfieldWidth / float64(w),
		Y: (float64(y) + 0.5) * parameter.PlayfieldHeight / float64(h),
	}
}
