// Package app wires HTTP, control transports and session state together.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/frudas24/deskmouse/internal/cage"
	"github.com/frudas24/deskmouse/internal/config"
	"github.com/frudas24/deskmouse/internal/control"
	"github.com/frudas24/deskmouse/internal/monitor"
	"github.com/frudas24/deskmouse/internal/rtcinput"
	"github.com/frudas24/deskmouse/internal/session"
	"github.com/frudas24/deskmouse/mouse"
)

// App coordinates the HTTP API and the websocket/data-channel control transports.
type App struct {
	mu         sync.Mutex
	cfg        config.Config
	session    *session.Session
	pointer    mouse.Pointer
	discover   control.MonitorProvider
	log        zerolog.Logger
	controller *control.Controller
	control    *control.Server
	signaling  *rtcinput.Server
	monitors   []monitor.Monitor
}

// New creates a new application with its dependencies wired. discover is
// called by Start to enumerate displays.
func New(cfg config.Config, sess *session.Session, pointer mouse.Pointer, discover control.MonitorProvider, policy rtcinput.ClientPolicy, log zerolog.Logger) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if pointer == nil {
		return nil, errors.New("pointer is required")
	}
	if discover == nil {
		return nil, errors.New("monitor provider is required")
	}

	app := &App{
		cfg:      cfg,
		session:  sess,
		pointer:  pointer,
		discover: discover,
		log:      log,
	}

	app.controller = control.NewController(sess, pointer, app.ListMonitors, app.saveCage, log.With().Str("component", "control").Logger())
	app.control = control.NewServer(app.controller, log.With().Str("component", "ws_control").Logger())

	peers, err := rtcinput.NewPeerFactory(app.controller, cfg.ICEServers, log.With().Str("component", "rtcinput").Logger())
	if err != nil {
		return nil, fmt.Errorf("webrtc: %w", err)
	}
	app.signaling = rtcinput.NewServer(peers, policy, sess.Authorized, log.With().Str("component", "signaling").Logger())

	return app, nil
}

// Start enumerates monitors and restores persisted state into the session.
func (a *App) Start() error {
	monitors, err := a.discover()
	if err != nil {
		return fmt.Errorf("list monitors: %w", err)
	}
	if len(monitors) == 0 {
		return fmt.Errorf("no monitors found")
	}
	a.mu.Lock()
	a.monitors = monitors
	a.mu.Unlock()

	monitorIndex := a.cfg.MonitorIndex
	if _, ok := monitor.GetMonitorByIndex(monitors, monitorIndex); !ok {
		primary, _ := monitor.Primary(monitors)
		a.log.Warn().Int("monitor", monitorIndex).Int("fallback", primary.Index).Msg("configured monitor not found")
		monitorIndex = primary.Index
	}
	a.session.SetMonitor(monitorIndex)
	a.session.SetInputEnabled(a.cfg.InputEnabled)

	if a.cfg.CagePath != "" {
		r, err := cage.Load(a.cfg.CagePath)
		if err != nil {
			return fmt.Errorf("load cage: %w", err)
		}
		a.session.SetCage(r)
	}

	a.log.Info().Int("monitors", len(monitors)).Int("monitor", monitorIndex).Bool("input", a.cfg.InputEnabled).Msg("app started")
	return nil
}

// ListMonitors returns the cached monitor list.
func (a *App) ListMonitors() ([]monitor.Monitor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]monitor.Monitor, len(a.monitors))
	copy(out, a.monitors)
	return out, nil
}

// Shutdown releases any buttons still held by a remote client.
func (a *App) Shutdown() error {
	return a.controller.ReleaseAll()
}

// Signaling returns the signaling websocket handler.
func (a *App) Signaling() *rtcinput.Server {
	return a.signaling
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// saveCage persists the cage when a path is configured.
func (a *App) saveCage(r cage.Rect) error {
	if a.cfg.CagePath == "" {
		return nil
	}
	return cage.Save(a.cfg.CagePath, r)
}
