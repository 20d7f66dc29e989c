//go:build windows

package mouse

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// winBackend injects pointer input with SendInput from user32.
type winBackend struct{}

// newBackend returns the SendInput backend.
func newBackend(_ options) (Backend, error) {
	return winBackend{}, nil
}

// MoveTo sends an absolute virtual-desktop move and pins the cursor with SetCursorPos.
func (winBackend) MoveTo(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	if err := sendMouseInput(winMove|winAbsolute|winVirtualDesk, dx, dy, 0); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return err
	}
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// Button presses or releases a button at the current cursor location.
func (winBackend) Button(b Button, d Direction) error {
	flags, data, err := winButtonInput(b, d)
	if err != nil {
		return err
	}
	return sendMouseInput(flags, 0, 0, data)
}

// Wheel scrolls by delta notches of WHEEL_DELTA.
func (winBackend) Wheel(a Axis, delta int) error {
	flags, data, err := winWheelInput(a, delta)
	if err != nil {
		return err
	}
	return sendMouseInput(flags, 0, 0, data)
}

// Position reads the cursor with GetCursorPos.
func (winBackend) Position() (Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return Point{}, fmt.Errorf("GetCursorPos: %w", lastError())
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// Close is a no-op; user32 stays loaded for the process lifetime.
func (winBackend) Close() error {
	return nil
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput: %w", lastError())
	}
	return nil
}

// mapAbsolute converts screen coordinates to the 0..65535 SendInput range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	return scaleAbsolute(x, y, int(vx), int(vy), int(vw), int(vh))
}

// lastError returns the calling thread's last Win32 error.
func lastError() error {
	if code := win.GetLastError(); code != 0 {
		return syscall.Errno(code)
	}
	return syscall.EINVAL
}
