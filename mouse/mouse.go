package mouse

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Mouse is the system pointer. All methods are synchronous one-shot calls
// into the platform backend and are safe for concurrent use when the backend is.
type Mouse struct {
	backend Backend
	log     zerolog.Logger
	closed  atomic.Bool
}

// New opens the native backend for the running platform.
func New(opts ...Option) (*Mouse, error) {
	o := buildOptions(opts)
	backend, err := newBackend(o)
	if err != nil {
		return nil, err
	}
	return &Mouse{backend: backend, log: o.logger}, nil
}

// NewWithBackend wraps an explicit backend.
func NewWithBackend(backend Backend, opts ...Option) (*Mouse, error) {
	if backend == nil {
		return nil, fmt.Errorf("mouse: backend is required")
	}
	o := buildOptions(opts)
	return &Mouse{backend: backend, log: o.logger}, nil
}

// MoveTo moves the pointer to (x, y), where (0, 0) is the top-left of the screen.
func (m *Mouse) MoveTo(x, y int) error {
	if m.closed.Load() {
		return ErrClosed
	}
	m.log.Debug().Int("x", x).Int("y", y).Msg("move")
	return m.backend.MoveTo(x, y)
}

// Press presses b and keeps it held until Release is called.
func (m *Mouse) Press(b Button) error {
	return m.button(b, Down)
}

// Release releases b.
func (m *Mouse) Release(b Button) error {
	return m.button(b, Up)
}

// Click presses then releases b.
func (m *Mouse) Click(b Button) error {
	if err := m.Press(b); err != nil {
		return err
	}
	return m.Release(b)
}

// Wheel scrolls vertically by delta notches. Positive values scroll up.
func (m *Mouse) Wheel(delta int) error {
	return m.wheel(Vertical, delta)
}

// Scroll is an alias for Wheel.
func (m *Mouse) Scroll(delta int) error {
	return m.Wheel(delta)
}

// HWheel scrolls horizontally by delta notches. Positive values scroll right.
func (m *Mouse) HWheel(delta int) error {
	return m.wheel(Horizontal, delta)
}

// Position returns the current pointer location.
func (m *Mouse) Position() (Point, error) {
	if m.closed.Load() {
		return Point{}, ErrClosed
	}
	return m.backend.Position()
}

// Close releases backend resources. Further calls return ErrClosed.
func (m *Mouse) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	return m.backend.Close()
}

// button validates and forwards one press or release to the backend.
func (m *Mouse) button(b Button, d Direction) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := validateButton(b, d); err != nil {
		return err
	}
	m.log.Debug().Stringer("button", b).Stringer("dir", d).Msg("button")
	return m.backend.Button(b, d)
}

// wheel validates and forwards one scroll to the backend.
func (m *Mouse) wheel(a Axis, delta int) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if a != Vertical && a != Horizontal {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
	if delta == 0 {
		return nil
	}
	m.log.Debug().Stringer("axis", a).Int("delta", delta).Msg("wheel")
	return m.backend.Wheel(a, delta)
}
