// Package testutil provides recording fakes for pointer tests.
package testutil

import (
	"sync"

	"github.com/frudas24/deskmouse/mouse"
)

// Call records a single injected action.
type Call struct {
	Name   string
	X      int
	Y      int
	Button mouse.Button
	Delta  int
}

// FakePointer implements mouse.Pointer and records calls for tests.
type FakePointer struct {
	mu    sync.Mutex
	Calls []Call
	// Pos is returned by Position and updated by MoveTo.
	Pos mouse.Point
	// Err, when set, is returned by every call after it is recorded.
	Err error
}

// Ensure FakePointer implements the interface.
var _ mouse.Pointer = (*FakePointer)(nil)

// MoveTo records an absolute move.
func (f *FakePointer) MoveTo(x, y int) error {
	f.record(Call{Name: "MoveTo", X: x, Y: y})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err == nil {
		f.Pos = mouse.Point{X: x, Y: y}
	}
	return f.Err
}

// Press records a button press.
func (f *FakePointer) Press(b mouse.Button) error {
	return f.record(Call{Name: "Press", Button: b})
}

// Release records a button release.
func (f *FakePointer) Release(b mouse.Button) error {
	return f.record(Call{Name: "Release", Button: b})
}

// Click records a click.
func (f *FakePointer) Click(b mouse.Button) error {
	return f.record(Call{Name: "Click", Button: b})
}

// Wheel records a vertical wheel delta.
func (f *FakePointer) Wheel(delta int) error {
	return f.record(Call{Name: "Wheel", Delta: delta})
}

// HWheel records a horizontal wheel delta.
func (f *FakePointer) HWheel(delta int) error {
	return f.record(Call{Name: "HWheel", Delta: delta})
}

// Position returns Pos.
func (f *FakePointer) Position() (mouse.Point, error) {
	f.record(Call{Name: "Position"})
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Pos, f.Err
}

// Names returns the recorded call names in order.
func (f *FakePointer) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.Name)
	}
	return out
}

// record appends c to the call log.
func (f *FakePointer) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)
	return f.Err
}
