package testutil

import "github.com/frudas24/deskmouse/mouse"

// BackendCall records a single backend invocation.
type BackendCall struct {
	Name      string
	X         int
	Y         int
	Button    mouse.Button
	Direction mouse.Direction
	Axis      mouse.Axis
	Delta     int
}

// FakeBackend implements mouse.Backend and records calls for tests.
type FakeBackend struct {
	Calls  []BackendCall
	Pos    mouse.Point
	Closed bool
	// FailOn makes the named method return Err.
	FailOn string
	Err    error
}

var _ mouse.Backend = (*FakeBackend)(nil)

// MoveTo records an absolute move.
func (f *FakeBackend) MoveTo(x, y int) error {
	f.Calls = append(f.Calls, BackendCall{Name: "MoveTo", X: x, Y: y})
	if err := f.fail("MoveTo"); err != nil {
		return err
	}
	f.Pos = mouse.Point{X: x, Y: y}
	return nil
}

// Button records a button transition.
func (f *FakeBackend) Button(b mouse.Button, d mouse.Direction) error {
	f.Calls = append(f.Calls, BackendCall{Name: "Button", Button: b, Direction: d})
	return f.fail("Button")
}

// Wheel records a wheel delta.
func (f *FakeBackend) Wheel(a mouse.Axis, delta int) error {
	f.Calls = append(f.Calls, BackendCall{Name: "Wheel", Axis: a, Delta: delta})
	return f.fail("Wheel")
}

// Position returns Pos.
func (f *FakeBackend) Position() (mouse.Point, error) {
	f.Calls = append(f.Calls, BackendCall{Name: "Position"})
	if err := f.fail("Position"); err != nil {
		return mouse.Point{}, err
	}
	return f.Pos, nil
}

// Close marks the backend closed.
func (f *FakeBackend) Close() error {
	f.Calls = append(f.Calls, BackendCall{Name: "Close"})
	f.Closed = true
	return f.fail("Close")
}

// fail returns the configured error for the named method, if any.
func (f *FakeBackend) fail(name string) error {
	if f.FailOn == name {
		return f.Err
	}
	return nil
}
