package app

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/deskmouse/internal/cage"
	"github.com/frudas24/deskmouse/internal/observability"
	"github.com/frudas24/deskmouse/internal/session"
	"github.com/frudas24/deskmouse/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/position", a.handlePosition)
	mux.Handle("/ws/signal", a.Signaling())
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
	if a.cfg.MetricsEnabled {
		observability.RegisterMetrics()
		mux.Handle("/metrics", observability.Handler())
	}

	mux.Handle("/", a.staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	MonitorIndex  int       `json:"monitor"`
	InputEnabled  bool      `json:"inputEnabled"`
	Cage          cage.Rect `json:"cage"`
	Caged         bool      `json:"caged"`
	Authenticated bool      `json:"authenticated"`
}

type positionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	token, ok := a.session.Login(req.Password)
	if !ok {
		a.log.Warn().Str("remote", r.RemoteAddr).Msg("login failed")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	http.SetCookie(w, sessionCookie(token, 0))
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout revokes the caller's token and expires its cookie.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout(session.RequestToken(r))
	http.SetCookie(w, sessionCookie("", -1))
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// sessionCookie builds the login cookie. A negative maxAge deletes it.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// handleMonitors returns the list of monitors.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	list, err := a.ListMonitors()
	if err != nil {
		http.Error(w, "failed to list monitors", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// handleState returns current session state.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		MonitorIndex:  snap.MonitorIndex,
		InputEnabled:  snap.InputEnabled,
		Cage:          snap.Cage,
		Caged:         !cage.Empty(snap.Cage),
		Authenticated: true,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handlePosition returns the current cursor position.
func (a *App) handlePosition(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	p, err := a.pointer.Position()
	if err != nil {
		a.log.Error().Err(err).Msg("query cursor position")
		http.Error(w, "failed to query position", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(positionResponse{X: p.X, Y: p.Y})
}

// requireAuth returns false and writes an error if r carries no valid session token.
func (a *App) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !a.session.Authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func (a *App) staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		a.log.Warn().Err(err).Msg("static assets unavailable")
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
