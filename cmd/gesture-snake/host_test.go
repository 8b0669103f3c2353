package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/input"
	"github.com/lixenwraith/gesture-snake/render"
	"github.com/lixenwraith/gesture-snake/replay"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// scriptedSource replays a fixed list of points, then reports no hand
type scriptedSource struct {
	points []vmath.Point
	next   int
}

func (s *scriptedSource) Latest() (vmath.Point, bool) {
	if s.next >= len(s.points) {
		return vmath.Point{}, false
	}
	p := s.points[s.next]
	s.next++
	return p, true
}

type soundLog struct {
	events []engine.EventSet
}

func (l *soundLog) OnTick(events engine.EventSet) { l.events = append(l.events, events) }

// focusScreen records which input reports the host enables
type focusScreen struct {
	tcell.SimulationScreen
	mouse []tcell.MouseFlags
	focus bool
}

func (s *focusScreen) EnableMouse(flags ...tcell.MouseFlags) {
	s.mouse = append(s.mouse, flags...)
	s.SimulationScreen.EnableMouse(flags...)
}

func (s *focusScreen) EnableFocus() {
	s.focus = true
	s.SimulationScreen.EnableFocus()
}

// endlessKeys never runs out of events
type endlessKeys struct{}

func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

func newTestHost(t *testing.T, points []vmath.Point) (*host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	session := engine.NewSession(engine.Options{Seed: 5, ID: "host-test"})
	return &host{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(screen),
		controls: input.DefaultControls(),
		mouse:    input.NewMouseSource(80, 24),
		source:   &scriptedSource{points: points},
		recorder: replay.NewRecorder(session.ID(), session.Seed()),
	}, screen
}

func TestStepTicksOnlyWithHand(t *testing.T) {
	h, _ := newTestHost(t, []vmath.Point{{X: 300, Y: 300}, {X: 310, Y: 300}})

	if snap := h.step(); snap.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", snap.Tick)
	}
	if snap := h.step(); snap.Tick != 2 {
		t.Errorf("Expected tick 2, got %d", snap.Tick)
	}
	if snap := h.step(); snap.Tick != 2 {
		t.Errorf("Expected no tick without a hand, got %d", snap.Tick)
	}
	if h.recorder.Len() != 2 {
		t.Errorf("Expected 2 recorded frames, got %d", h.recorder.Len())
	}
}

func TestStepForwardsEventsToSound(t *testing.T) {
	h, _ := newTestHost(t, nil)
	food := h.session.Snapshot().Food
	h.source = &scriptedSource{points: []vmath.Point{food}}
	sounds := &soundLog{}
	h.sound = sounds

	snap := h.step()
	if !snap.Events.Has(engine.EventFoodEaten) {
		t.Fatalf("Expected food pickup at food centre, got %s", snap.Events)
	}
	if len(sounds.events) != 1 || !sounds.events[0].Has(engine.EventFoodEaten) {
		t.Errorf("Expected one FoodEaten delivery, got %v", sounds.events)
	}
}

func TestHandleEventQuit(t *testing.T) {
	h, _ := newTestHost(t, nil)

	if !h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("Expected unbound key to keep running")
	}
	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to stop the loop")
	}
	if h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to stop the loop")
	}
}

func TestResetIgnoredWhilePlaying(t *testing.T) {
	h, _ := newTestHost(t, []vmath.Point{{X: 300, Y: 300}})
	h.step()

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if snap := h.session.Snapshot(); snap.Tick != 1 {
		t.Errorf("Expected reset to be ignored while playing, tick %d", snap.Tick)
	}
	if h.recorder.Len() != 1 {
		t.Errorf("Expected no reset frame recorded, got %d frames", h.recorder.Len())
	}
}

func TestHandleEventMouseMovesSource(t *testing.T) {
	h, _ := newTestHost(t, nil)

	h.handleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	p, ok := h.mouse.Latest()
	if !ok {
		t.Fatal("Expected mouse point")
	}
	if p.X != 648 || p.Y != 375 {
		t.Errorf("Expected (648,375), got (%v,%v)", p.X, p.Y)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	h, _ := newTestHost(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := h.run(ctx, 5*time.Millisecond); err != context.DeadlineExceeded {
		t.Errorf("Expected deadline error, got %v", err)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	h, screen := newTestHost(t, nil)

	done := make(chan error, 1)
	go func() { done <- h.run(context.Background(), 5*time.Millisecond) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected loop to exit on q")
	}
}

func TestEnableMouseReportsFocus(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(sim.Fini)
	screen := &focusScreen{SimulationScreen: sim}

	enableMouse(screen)

	if len(screen.mouse) != 1 || screen.mouse[0] != tcell.MouseMotionEvents {
		t.Errorf("Expected motion reporting, got %v", screen.mouse)
	}
	if !screen.focus {
		t.Error("Expected focus reporting enabled so focus loss pauses the game")
	}
}

func TestFocusLossShowsPrompt(t *testing.T) {
	h, screen := newTestHost(t, nil)
	h.source = h.mouse

	h.handleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	if snap := h.step(); snap.Tick != 1 {
		t.Fatalf("Expected tick with mouse present, got %d", snap.Tick)
	}

	h.handleEvent(tcell.NewEventFocus(false))
	if snap := h.step(); snap.Tick != 1 {
		t.Errorf("Expected no tick after focus loss, got %d", snap.Tick)
	}

	cells, w, _ := screen.GetContents()
	var row []rune
	for x := 0; x < w; x++ {
		row = append(row, cells[12*w+x].Runes...)
	}
	if !strings.Contains(string(row), render.PromptText) {
		t.Errorf("Expected prompt after focus loss, got %q", string(row))
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	events := pollEvents(endlessKeys{}, done)

	deadline := time.Now().Add(2 * time.Second)
	for len(events) < cap(events) {
		if time.Now().After(deadline) {
			t.Fatal("Expected event buffer to fill")
		}
		time.Sleep(time.Millisecond)
	}
	close(done)

	received := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
			received++
			if received > 10*cap(events) {
				t.Fatal("Expected poller to stop forwarding after done")
			}
		case <-timeout:
			t.Fatal("Expected event channel to close after done")
		}
	}
}
