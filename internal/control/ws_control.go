package control

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/frudas24/deskmouse/internal/observability"
)

// Server handles websocket control input.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	ctrl     *Controller
	log      zerolog.Logger
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(ctrl *Controller, log zerolog.Logger) *Server {
	return &Server{
		ctrl: ctrl,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.ctrl.session.Authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("control connection rejected")
		_ = conn.WriteJSON(ErrorMessage(err))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.log.Info().Str("remote", r.RemoteAddr).Msg("control connected")

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		reply, err := s.ctrl.Handle(msg)
		if err != nil {
			reply = ErrorMessage(err)
		}
		if reply == nil {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	observability.ConnectionOpened()
	return nil
}

// cleanupConn clears the active connection and releases any held buttons.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		observability.ConnectionClosed()
	}
	s.mu.Unlock()
	if err := s.ctrl.ReleaseAll(); err != nil {
		s.log.Warn().Err(err).Msg("release held buttons")
	}
	_ = conn.Close()
	s.log.Info().Msg("control disconnected")
}
