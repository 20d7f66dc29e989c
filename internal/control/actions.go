package control

import (
	"fmt"

	"github.com/frudas24/deskmouse/mouse"
)

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the cursor to an absolute position.
	ActMove ActionType = "move"
	// ActPress presses and holds a button.
	ActPress ActionType = "press"
	// ActRelease releases a button.
	ActRelease ActionType = "release"
	// ActClick presses and releases a button.
	ActClick ActionType = "click"
	// ActWheel scrolls vertically.
	ActWheel ActionType = "wheel"
	// ActHWheel scrolls horizontally.
	ActHWheel ActionType = "hwheel"
)

// Action describes a resolved input operation to apply.
type Action struct {
	Type   ActionType
	X      int
	Y      int
	Button mouse.Button
	Delta  int
}

// Apply executes a single action against p.
func (a Action) Apply(p mouse.Pointer) error {
	switch a.Type {
	case ActMove:
		return p.MoveTo(a.X, a.Y)
	case ActPress:
		return p.Press(a.Button)
	case ActRelease:
		return p.Release(a.Button)
	case ActClick:
		return p.Click(a.Button)
	case ActWheel:
		return p.Wheel(a.Delta)
	case ActHWheel:
		return p.HWheel(a.Delta)
	default:
		return fmt.Errorf("unknown action %q", a.Type)
	}
}
