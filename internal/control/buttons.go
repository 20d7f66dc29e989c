package control

import (
	"errors"

	"github.com/frudas24/deskmouse/mouse"
)

var allButtons = []mouse.Button{mouse.Left, mouse.Right, mouse.Middle, mouse.X1, mouse.X2}

// ButtonState tracks which buttons a remote client is holding down.
type ButtonState struct {
	held map[mouse.Button]bool
}

// NewButtonState returns an empty tracker.
func NewButtonState() *ButtonState {
	return &ButtonState{held: make(map[mouse.Button]bool)}
}

// Observe updates held state after a successfully applied action.
func (s *ButtonState) Observe(a Action) {
	switch a.Type {
	case ActPress:
		s.held[a.Button] = true
	case ActRelease, ActClick:
		delete(s.held, a.Button)
	}
}

// Held returns the held buttons in enum order.
func (s *ButtonState) Held() []mouse.Button {
	var out []mouse.Button
	for _, b := range allButtons {
		if s.held[b] {
			out = append(out, b)
		}
	}
	return out
}

// ReleaseAll releases every held button and clears the state.
// All buttons are attempted; the returned error joins every failure.
func (s *ButtonState) ReleaseAll(p mouse.Pointer) error {
	var errs []error
	for _, b := range s.Held() {
		if err := p.Release(b); err != nil {
			errs = append(errs, err)
		}
		delete(s.held, b)
	}
	return errors.Join(errs...)
}
