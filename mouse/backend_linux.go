//go:build linux

package mouse

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
)

// x11Backend fakes core pointer events through the XTEST extension.
type x11Backend struct {
	conn *xgb.Conn
	root xproto.Window
}

// newBackend connects to the X display and initializes XTEST.
func newBackend(o options) (Backend, error) {
	conn, err := xgb.NewConnDisplay(o.display)
	if err != nil {
		return nil, fmt.Errorf("mouse: open X display %q: %w", o.display, err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("mouse: XTEST extension: %w", err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &x11Backend{conn: conn, root: screen.Root}, nil
}

// MoveTo fakes an absolute motion event on the root window. Coordinates
// outside the INT16 range saturate at the edge.
func (x *x11Backend) MoveTo(px, py int) error {
	return x.fake(xproto.MotionNotify, 0, x11Coord(px), x11Coord(py))
}

// Button fakes a press or release of the mapped core button.
func (x *x11Backend) Button(b Button, d Direction) error {
	if err := validateButton(b, d); err != nil {
		return err
	}
	code, err := x11Button(b)
	if err != nil {
		return err
	}
	eventType := byte(xproto.ButtonPress)
	if d == Up {
		eventType = xproto.ButtonRelease
	}
	return x.fake(eventType, code, 0, 0)
}

// Wheel clicks wheel buttons 4-7 once per notch.
func (x *x11Backend) Wheel(a Axis, delta int) error {
	code, clicks, err := x11WheelClicks(a, delta)
	if err != nil {
		return err
	}
	for i := 0; i < clicks; i++ {
		if err := x.fake(xproto.ButtonPress, code, 0, 0); err != nil {
			return err
		}
		if err := x.fake(xproto.ButtonRelease, code, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

// Position queries the pointer relative to the root window.
func (x *x11Backend) Position() (Point, error) {
	reply, err := xproto.QueryPointer(x.conn, x.root).Reply()
	if err != nil {
		return Point{}, fmt.Errorf("mouse: QueryPointer: %w", err)
	}
	return Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// Close closes the X connection.
func (x *x11Backend) Close() error {
	x.conn.Close()
	return nil
}

// fake sends one XTEST FakeInput request and waits for its error reply.
func (x *x11Backend) fake(eventType, detail byte, rootX, rootY int16) error {
	err := xtest.FakeInputChecked(x.conn, eventType, detail, 0, x.root, rootX, rootY, 0).Check()
	if err != nil {
		return fmt.Errorf("mouse: XTEST FakeInput: %w", err)
	}
	return nil
}
