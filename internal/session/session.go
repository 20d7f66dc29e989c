// Package session holds runtime state for the active controller.
package session

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/frudas24/deskmouse/internal/cage"
)

// CookieName is the cookie carrying the login token.
const CookieName = "deskmouse_session"

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	InputEnabled bool
	MonitorIndex int
	Cage         cage.Rect
}

// Session holds runtime state shared by the HTTP API and control transports.
// Each successful login gets its own token; control state is shared.
type Session struct {
	mu           sync.RWMutex
	password     string
	tokens       map[string]struct{}
	inputEnabled bool
	monitorIndex int
	cage         cage.Rect
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		tokens:       make(map[string]struct{}),
		inputEnabled: true,
		monitorIndex: 1,
	}
}

// Login validates the password and issues a new token. A failed attempt
// leaves existing tokens untouched.
func (s *Session) Login(pass string) (string, bool) {
	if pass == "" || subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) != 1 {
		return "", false
	}
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return token, true
}

// Logout revokes token.
func (s *Session) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// Valid reports whether token was issued by Login and not revoked.
func (s *Session) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Authorized reports whether r carries a valid token, either in the session
// cookie or as an "Authorization: Bearer" header.
func (s *Session) Authorized(r *http.Request) bool {
	return s.Valid(RequestToken(r))
}

// RequestToken extracts the login token from r, preferring the cookie.
func RequestToken(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SetInputEnabled toggles whether inputs are forwarded to the pointer.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether inputs are forwarded to the pointer.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetMonitor sets the monitor used for normalized coordinates.
func (s *Session) SetMonitor(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitorIndex = idx
}

// Monitor returns the selected monitor index.
func (s *Session) Monitor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monitorIndex
}

// SetCage stores the confinement rectangle. An empty rect disables confinement.
func (s *Session) SetCage(r cage.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cage = cage.Normalize(r)
}

// Cage returns the confinement rectangle.
func (s *Session) Cage() cage.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cage
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		InputEnabled: s.inputEnabled,
		MonitorIndex: s.monitorIndex,
		Cage:         s.cage,
	}
}
