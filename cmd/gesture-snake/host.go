package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/input"
	"github.com/lixenwraith/gesture-snake/render"
	"github.com/lixenwraith/gesture-snake/replay"
)

// soundSink receives the events of every processed tick
type soundSink interface {
	OnTick(events engine.EventSet)
}

// host wires input, session, sound and rendering into the frame loop
type host struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	controls *input.Controls
	mouse    *input.MouseSource
	source   input.PointSource
	sound    soundSink        // Optional
	recorder *replay.Recorder // Optional
}

// logFlushInterval paces glog flushes while the loop runs
const logFlushInterval = time.Second

// eventPoller is the event half of tcell.Screen
type eventPoller interface {
	PollEvent() tcell.Event
}

// pollEvents forwards screen events until the screen finishes or done closes
func pollEvents(screen eventPoller, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// enableMouse turns on pointer motion and focus reports for the mouse source
func enableMouse(screen tcell.Screen) {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
}

// run drives frames at the given interval until quit or ctx is done
func (h *host) run(ctx context.Context, interval time.Duration) error {
	done := make(chan struct{})
	defer close(done)
	events := pollEvents(h.screen, done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	flush := time.NewTicker(logFlushInterval)
	defer flush.Stop()

	h.step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.step()
		case <-flush.C:
			glog.Flush()
		}
	}
}

// handleEvent processes one terminal event; false requests shutdown
func (h *host) handleEvent(ev tcell.Event) bool {
	if h.mouse != nil && h.mouse.HandleEvent(ev) {
		if _, ok := ev.(*tcell.EventResize); ok {
			h.screen.Sync()
		}
		return true
	}

	switch h.controls.Map(ev) {
	case input.ActionQuit:
		snap := h.session.Snapshot()
		glog.Infof("quit requested at score %d level %d", snap.Score, snap.Level)
		return false
	case input.ActionReset:
		if h.session.Phase() == engine.PhaseGameOver {
			h.session.Reset()
			if h.recorder != nil {
				h.recorder.Reset()
			}
			glog.V(1).Info("session reset")
		}
	}
	return true
}

// step advances the session when a hand is present and draws a frame
func (h *host) step() engine.Snapshot {
	p, present := h.source.Latest()

	var snap engine.Snapshot
	if present {
		snap = h.session.Tick(p)
		if h.recorder != nil {
			h.recorder.Point(p)
		}
		if snap.Events != 0 {
			glog.V(1).Infof("tick %d: %s (score %d, level %d)", snap.Tick, snap.Events, snap.Score, snap.Level)
			if h.sound != nil {
				h.sound.OnTick(snap.Events)
			}
		}
	} else {
		snap = h.session.Snapshot()
	}

	h.renderer.Draw(snap, present)
	return snap
}
