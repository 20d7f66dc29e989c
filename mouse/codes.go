package mouse

import (
	"fmt"
	"math"
)

// Win32 SendInput mouse flags and data values.
const (
	winMove        uint32 = 0x0001
	winLeftDown    uint32 = 0x0002
	winLeftUp      uint32 = 0x0004
	winRightDown   uint32 = 0x0008
	winRightUp     uint32 = 0x0010
	winMiddleDown  uint32 = 0x0020
	winMiddleUp    uint32 = 0x0040
	winXDown       uint32 = 0x0080
	winXUp         uint32 = 0x0100
	winWheel       uint32 = 0x0800
	winHWheel      uint32 = 0x1000
	winVirtualDesk uint32 = 0x4000
	winAbsolute    uint32 = 0x8000

	winXButton1   uint32 = 0x0001
	winXButton2   uint32 = 0x0002
	winWheelDelta        = 120

	// winMaxWheelNotches keeps delta*WHEEL_DELTA inside the signed mouseData range.
	winMaxWheelNotches = math.MaxInt32 / winWheelDelta
)

// winButtonCodes is indexed by [Button][Direction].
var winButtonCodes = [...][2]uint32{
	Left:   {Down: winLeftDown, Up: winLeftUp},
	Right:  {Down: winRightDown, Up: winRightUp},
	Middle: {Down: winMiddleDown, Up: winMiddleUp},
	X1:     {Down: winXDown, Up: winXUp},
	X2:     {Down: winXDown, Up: winXUp},
}

// winButtonInput returns the SendInput flag and mouseData for a button transition.
func winButtonInput(b Button, d Direction) (flags, data uint32, err error) {
	if err := validateButton(b, d); err != nil {
		return 0, 0, err
	}
	flags = winButtonCodes[b][d]
	switch b {
	case X1:
		data = winXButton1
	case X2:
		data = winXButton2
	}
	return flags, data, nil
}

// winWheelInput returns the SendInput flag and mouseData for a wheel delta in notches.
func winWheelInput(a Axis, delta int) (flags, data uint32, err error) {
	switch a {
	case Vertical:
		flags = winWheel
	case Horizontal:
		flags = winHWheel
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
	delta = clampInt(delta, -winMaxWheelNotches, winMaxWheelNotches)
	return flags, uint32(int32(delta * winWheelDelta)), nil
}

// CoreGraphics event types and mouse buttons.
const (
	cgLeftMouseDown  uint32 = 1
	cgLeftMouseUp    uint32 = 2
	cgRightMouseDown uint32 = 3
	cgRightMouseUp   uint32 = 4
	cgMouseMoved     uint32 = 5
	cgOtherMouseDown uint32 = 25
	cgOtherMouseUp   uint32 = 26

	cgButtonLeft   uint32 = 0
	cgButtonRight  uint32 = 1
	cgButtonCenter uint32 = 2
	cgButtonX1     uint32 = 3
	cgButtonX2     uint32 = 4
)

type cgMouseCode struct {
	eventType uint32
	button    uint32
}

// cgButtonCodes is indexed by [Button][Direction].
var cgButtonCodes = [...][2]cgMouseCode{
	Left:   {Down: {cgLeftMouseDown, cgButtonLeft}, Up: {cgLeftMouseUp, cgButtonLeft}},
	Right:  {Down: {cgRightMouseDown, cgButtonRight}, Up: {cgRightMouseUp, cgButtonRight}},
	Middle: {Down: {cgOtherMouseDown, cgButtonCenter}, Up: {cgOtherMouseUp, cgButtonCenter}},
	X1:     {Down: {cgOtherMouseDown, cgButtonX1}, Up: {cgOtherMouseUp, cgButtonX1}},
	X2:     {Down: {cgOtherMouseDown, cgButtonX2}, Up: {cgOtherMouseUp, cgButtonX2}},
}

// cgButtonEvent returns the CGEventType and CGMouseButton for a button transition.
func cgButtonEvent(b Button, d Direction) (eventType, button uint32, err error) {
	if err := validateButton(b, d); err != nil {
		return 0, 0, err
	}
	code := cgButtonCodes[b][d]
	return code.eventType, code.button, nil
}

// cgWheelDeltas returns the wheel count and per-wheel line deltas for a scroll.
// Deltas beyond the int32 range saturate.
func cgWheelDeltas(a Axis, delta int) (count, wheel1, wheel2 int32, err error) {
	d := int32(clampInt(delta, math.MinInt32, math.MaxInt32))
	switch a {
	case Vertical:
		return 1, d, 0, nil
	case Horizontal:
		return 2, 0, d, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
}

// X11 core pointer buttons.
const (
	x11Left       byte = 1
	x11Middle     byte = 2
	x11Right      byte = 3
	x11WheelUp    byte = 4
	x11WheelDown  byte = 5
	x11WheelLeft  byte = 6
	x11WheelRight byte = 7
	x11Back       byte = 8
	x11Forward    byte = 9
)

var x11ButtonCodes = [...]byte{
	Left:   x11Left,
	Right:  x11Right,
	Middle: x11Middle,
	X1:     x11Back,
	X2:     x11Forward,
}

// x11Button returns the core protocol button number for b.
func x11Button(b Button) (byte, error) {
	if !b.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidButton, int(b))
	}
	return x11ButtonCodes[b], nil
}

// x11WheelClicks returns the wheel button and how many clicks a delta needs.
// A zero delta yields zero clicks.
func x11WheelClicks(a Axis, delta int) (button byte, clicks int, err error) {
	clicks = delta
	if clicks < 0 {
		clicks = -clicks
	}
	switch a {
	case Vertical:
		if delta >= 0 {
			return x11WheelUp, clicks, nil
		}
		return x11WheelDown, clicks, nil
	case Horizontal:
		if delta >= 0 {
			return x11WheelRight, clicks, nil
		}
		return x11WheelLeft, clicks, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
}

// validateButton rejects values outside the Button and Direction enums.
func validateButton(b Button, d Direction) error {
	if !b.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidButton, int(b))
	}
	if d != Down && d != Up {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return nil
}

// x11Coord saturates a coordinate to the INT16 range of the core protocol.
func x11Coord(v int) int16 {
	return int16(clampInt(v, math.MinInt16, math.MaxInt16))
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// scaleAbsolute maps a virtual-desktop pixel onto the normalized 0..65535
// range used by MOUSEEVENTF_ABSOLUTE|MOUSEEVENTF_VIRTUALDESK.
func scaleAbsolute(x, y, vx, vy, vw, vh int) (int32, int32) {
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
