// Package mouse moves, presses, releases and scrolls the system pointer
// through each platform's native input-injection API.
package mouse

import (
	"fmt"
	"strings"
)

// Button identifies a physical mouse button.
type Button int

const (
	// Left is the primary button.
	Left Button = iota
	// Right is the secondary button.
	Right
	// Middle is the wheel button.
	Middle
	// X1 is the first extended button (usually "back").
	X1
	// X2 is the second extended button (usually "forward").
	X2
)

var buttonNames = [...]string{
	Left:   "left",
	Right:  "right",
	Middle: "middle",
	X1:     "x1",
	X2:     "x2",
}

// String returns the canonical lowercase button name.
func (b Button) String() string {
	if !b.valid() {
		return fmt.Sprintf("button(%d)", int(b))
	}
	return buttonNames[b]
}

// valid reports whether b is one of the supported buttons.
func (b Button) valid() bool {
	return b >= Left && b <= X2
}

// ParseButton maps a button name to a Button. Empty input means Left.
func ParseButton(name string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	case "middle", "wheel":
		return Middle, nil
	case "x1", "x":
		return X1, nil
	case "x2":
		return X2, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrInvalidButton, name)
	}
}

// Direction is the transition applied to a button.
type Direction int

const (
	// Down presses a button.
	Down Direction = iota
	// Up releases a button.
	Up
)

// String returns "down" or "up".
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Axis selects the wheel being scrolled.
type Axis int

const (
	// Vertical scrolls up and down.
	Vertical Axis = iota
	// Horizontal scrolls left and right.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Point is a screen coordinate with the origin at the top-left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
