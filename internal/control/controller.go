package control

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/frudas24/deskmouse/internal/cage"
	"github.com/frudas24/deskmouse/internal/monitor"
	"github.com/frudas24/deskmouse/internal/observability"
	"github.com/frudas24/deskmouse/internal/session"
	"github.com/frudas24/deskmouse/mouse"
)

var (
	// ErrUnknownMessage is returned for an unrecognized message type.
	ErrUnknownMessage = errors.New("unknown message type")
	// ErrMonitorNotFound is returned when the selected monitor does not exist.
	ErrMonitorNotFound = errors.New("monitor not found")
)

// MaxWheelNotches caps the notches applied per axis by one wheel message.
const MaxWheelNotches = 100

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// Controller applies control messages to a pointer. It is shared by every
// transport, so messages from different connections are serialized. Held
// buttons are tracked per pointer, not per connection: there is one OS
// cursor, and whichever transport disconnects releases all of them.
type Controller struct {
	mu           sync.Mutex
	session      *session.Session
	pointer      mouse.Pointer
	listMonitors MonitorProvider
	saveCage     func(cage.Rect) error
	buttons      *ButtonState
	log          zerolog.Logger
}

// NewController creates a controller. saveCage may be nil.
func NewController(sess *session.Session, pointer mouse.Pointer, listMonitors MonitorProvider, saveCage func(cage.Rect) error, log zerolog.Logger) *Controller {
	return &Controller{
		session:      sess,
		pointer:      pointer,
		listMonitors: listMonitors,
		saveCage:     saveCage,
		buttons:      NewButtonState(),
		log:          log,
	}
}

// Handle processes one message and returns an optional reply.
// Pointer messages are dropped silently while input is disabled.
func (c *Controller) Handle(msg Message) (*Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.T {
	case MsgMove, MsgDown, MsgUp, MsgClick, MsgWheel:
		if !c.session.InputEnabled() {
			return nil, nil
		}
		actions, err := c.actionsFor(msg)
		if err != nil {
			return nil, err
		}
		return nil, c.applyActions(actions)
	case MsgPosition:
		p, err := c.pointer.Position()
		if err != nil {
			return nil, err
		}
		return PositionMessage(p.X, p.Y), nil
	case MsgInputEnabled:
		if msg.Enabled == nil {
			return nil, nil
		}
		c.session.SetInputEnabled(*msg.Enabled)
		c.log.Info().Bool("enabled", *msg.Enabled).Msg("input toggled")
		if !*msg.Enabled {
			return nil, c.buttons.ReleaseAll(c.pointer)
		}
		return nil, nil
	case MsgSetMonitor:
		return nil, c.setMonitor(msg.Idx)
	case MsgSetCage:
		return nil, c.setCage(msg.Rect)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.T)
	}
}

// ReleaseAll releases every button held through this controller, whichever
// transport pressed it.
func (c *Controller) ReleaseAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buttons.ReleaseAll(c.pointer)
}

// actionsFor resolves a pointer message into actions.
func (c *Controller) actionsFor(msg Message) ([]Action, error) {
	switch msg.T {
	case MsgMove:
		x, y, err := c.mapCoords(msg)
		if err != nil {
			return nil, err
		}
		return []Action{{Type: ActMove, X: x, Y: y}}, nil
	case MsgDown, MsgUp, MsgClick:
		b, err := mouse.ParseButton(msg.Button)
		if err != nil {
			return nil, err
		}
		kind := ActClick
		switch msg.T {
		case MsgDown:
			kind = ActPress
		case MsgUp:
			kind = ActRelease
		}
		return []Action{{Type: kind, Button: b}}, nil
	case MsgWheel:
		var actions []Action
		dy := min(max(msg.DY, -MaxWheelNotches), MaxWheelNotches)
		dx := min(max(msg.DX, -MaxWheelNotches), MaxWheelNotches)
		if dy != 0 {
			actions = append(actions, Action{Type: ActWheel, Delta: dy})
		}
		if dx != 0 {
			actions = append(actions, Action{Type: ActHWheel, Delta: dx})
		}
		return actions, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.T)
	}
}

// mapCoords converts message coordinates to absolute pixels and confines them to the cage.
// Raw pixel moves are first kept on the virtual desktop.
func (c *Controller) mapCoords(msg Message) (int, int, error) {
	var x, y int
	if msg.Norm {
		m, err := c.selectedMonitor()
		if err != nil {
			return 0, 0, err
		}
		x, y = NormToAbs(msg.X, msg.Y, m)
	} else {
		x, y = roundCoord(msg.X), roundCoord(msg.Y)
		if monitors, err := c.listMonitors(); err == nil {
			x, y = ConfineDesktop(monitors, x, y)
		} else {
			c.log.Debug().Err(err).Msg("monitor list unavailable for raw move")
		}
	}
	x, y = Confine(c.session.Cage(), x, y)
	return x, y, nil
}

// roundCoord rounds a raw coordinate to the nearest pixel within the int32 range.
func roundCoord(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(min(max(v, math.MinInt32), math.MaxInt32)))
}

// selectedMonitor returns the monitor chosen in the session.
func (c *Controller) selectedMonitor() (monitor.Monitor, error) {
	monitors, err := c.listMonitors()
	if err != nil {
		return monitor.Monitor{}, err
	}
	idx := c.session.Monitor()
	m, ok := monitor.GetMonitorByIndex(monitors, idx)
	if !ok {
		return monitor.Monitor{}, fmt.Errorf("%w: %d", ErrMonitorNotFound, idx)
	}
	return m, nil
}

// setMonitor selects the monitor used for normalized moves.
func (c *Controller) setMonitor(idx int) error {
	monitors, err := c.listMonitors()
	if err != nil {
		return err
	}
	if _, ok := monitor.GetMonitorByIndex(monitors, idx); !ok {
		return fmt.Errorf("%w: %d", ErrMonitorNotFound, idx)
	}
	c.session.SetMonitor(idx)
	c.log.Info().Int("monitor", idx).Msg("monitor selected")
	return nil
}

// setCage stores a new cage. A nil rect clears it.
func (c *Controller) setCage(r *cage.Rect) error {
	var rect cage.Rect
	if r != nil {
		rect = cage.Normalize(*r)
	}
	c.session.SetCage(rect)
	c.log.Info().Interface("cage", rect).Msg("cage updated")
	if c.saveCage != nil {
		if err := c.saveCage(rect); err != nil {
			return fmt.Errorf("save cage: %w", err)
		}
	}
	return c.recenter(rect)
}

// recenter moves the cursor to the middle of rect when it sits outside it.
// Nothing moves while input is disabled or the cage is empty.
func (c *Controller) recenter(rect cage.Rect) error {
	if cage.Empty(rect) || !c.session.InputEnabled() {
		return nil
	}
	p, err := c.pointer.Position()
	if err != nil {
		c.log.Warn().Err(err).Msg("cursor position unavailable, cage not entered")
		return nil
	}
	if cage.Contains(rect, p.X, p.Y) {
		return nil
	}
	x, y := cage.Center(rect)
	return c.applyActions([]Action{{Type: ActMove, X: x, Y: y}})
}

// applyActions executes actions in order and stops at the first failure.
func (c *Controller) applyActions(actions []Action) error {
	for _, action := range actions {
		start := time.Now()
		err := action.Apply(c.pointer)
		observability.RecordAction(string(action.Type), err, time.Since(start))
		if err != nil {
			c.log.Warn().Err(err).Str("action", string(action.Type)).Msg("input action failed")
			return err
		}
		c.buttons.Observe(action)
	}
	return nil
}
