// Package feed receives hand positions from an external tracker over a websocket.
//
// The tracker sends one JSON text message per camera frame:
//
//	{"x": 640.5, "y": 300.0}   hand at a playfield position
//	{"present": false}         hand lost
//
// Only the latest position is kept. A single tracker is served at a time; a new
// connection replaces the previous one.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Path is the websocket endpoint served by Start
const Path = "/hand"

const maxMessageSize = 512

var (
	ErrClosed  = errors.New("feed server closed")
	ErrStarted = errors.New("feed server already started")
)

// message is one tracker frame; nil fields were absent from the JSON
type message struct {
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Present *bool    `json:"present"`
}

// Server accepts a tracker connection and exposes its latest point
type Server struct {
	addr       string
	staleAfter time.Duration
	now        func() time.Time
	upgrader   websocket.Upgrader

	mu      sync.Mutex
	conn    *websocket.Conn
	point   vmath.Point
	present bool
	updated time.Time
	frames  uint64
	closed  bool

	httpSrv  *http.Server
	listener net.Listener
}

// NewServer creates a feed server for addr; call Start to listen
func NewServer(addr string) *Server {
	return &Server{
		addr:       addr,
		staleAfter: parameter.FeedStaleAfter,
		now:        time.Now,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetStaleAfter changes how long a point stays valid without updates
func (s *Server) SetStaleAfter(d time.Duration) {
	s.mu.Lock()
	s.staleAfter = d
	s.mu.Unlock()
}

// Handler returns the websocket upgrade handler
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleWS)
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.httpSrv != nil {
		return ErrStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("feed listen %s: %w", s.addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, s.Handler())
	s.listener = ln
	s.httpSrv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srv := s.httpSrv
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Errorf("feed: serve: %v", err)
		}
	}()

	glog.Infof("feed: listening on ws://%s%s", ln.Addr(), Path)
	return nil
}

// Addr returns the bound listener address, or the configured one before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Close stops the listener and drops the active tracker
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	srv := s.httpSrv
	conn := s.conn
	s.conn = nil
	s.present = false
	s.mu.Unlock()

	// Hijacked websocket connections are not tracked by http.Server
	if conn != nil {
		conn.Close()
	}
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// Latest returns the most recent hand position; stale or lost hands report false
func (s *Server) Latest() (vmath.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present || s.now().Sub(s.updated) > s.staleAfter {
		return vmath.Point{}, false
	}
	return s.point, true
}

// Frames returns the number of accepted tracker messages
func (s *Server) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		http.Error(w, "feed closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Warningf("feed: upgrade: %v", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	s.mu.Lock()
	prev := s.conn
	s.conn = conn
	s.mu.Unlock()
	if prev != nil {
		glog.V(1).Infof("feed: tracker %s replaced by %s", prev.RemoteAddr(), conn.RemoteAddr())
		prev.Close()
	} else {
		glog.V(1).Infof("feed: tracker connected from %s", conn.RemoteAddr())
	}

	go s.readLoop(conn)
}

func (s *Server) readLoop(conn *websocket.Conn) {
	defer func() {
		conn.Close()
		s.mu.Lock()
		if s.conn == conn {
			s.conn = nil
			s.present = false
		}
		s.mu.Unlock()
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				glog.V(1).Infof("feed: tracker read: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			glog.V(2).Infof("feed: bad frame: %v", err)
			continue
		}
		s.apply(conn, msg)
	}
}

// apply records a frame from conn; frames from a replaced connection are dropped
func (s *Server) apply(conn *websocket.Conn, msg message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != conn {
		return
	}

	switch {
	case msg.Present != nil && !*msg.Present:
		s.present = false
	case msg.X != nil && msg.Y != nil:
		s.point = vmath.Point{X: *msg.X, Y: *msg.Y}
		s.present = true
	default:
		return
	}
	s.updated = s.now()
	s.frames++
}
