//go:build darwin && cgo

package mouse

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

#define cgOK 0
#define cgNoSource -1
#define cgNoEvent -2

static CGEventSourceRef cgSource(void) {
	return CGEventSourceCreate(kCGEventSourceStateCombinedSessionState);
}

static int cgLocation(double *x, double *y) {
	CGEventSourceRef src = cgSource();
	if (src == NULL) return cgNoSource;
	CGEventRef ev = CGEventCreate(src);
	if (ev == NULL) {
		CFRelease(src);
		return cgNoEvent;
	}
	CGPoint p = CGEventGetLocation(ev);
	*x = p.x;
	*y = p.y;
	CFRelease(ev);
	CFRelease(src);
	return cgOK;
}

static int cgPostMouse(uint32_t type, double x, double y, uint32_t button) {
	CGEventSourceRef src = cgSource();
	if (src == NULL) return cgNoSource;
	CGEventRef ev = CGEventCreateMouseEvent(src, (CGEventType)type, CGPointMake(x, y), (CGMouseButton)button);
	if (ev == NULL) {
		CFRelease(src);
		return cgNoEvent;
	}
	if (type == kCGEventOtherMouseDown || type == kCGEventOtherMouseUp) {
		CGEventSetIntegerValueField(ev, kCGMouseEventButtonNumber, button);
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	CFRelease(src);
	return cgOK;
}

static int cgPostScroll(uint32_t count, int32_t wheel1, int32_t wheel2) {
	CGEventSourceRef src = cgSource();
	if (src == NULL) return cgNoSource;
	CGEventRef ev = CGEventCreateScrollWheelEvent(src, kCGScrollEventUnitLine, count, wheel1, wheel2);
	if (ev == NULL) {
		CFRelease(src);
		return cgNoEvent;
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	CFRelease(src);
	return cgOK;
}
*/
import "C"

// cgBackend posts CoreGraphics events at the HID event tap.
type cgBackend struct{}

// newBackend returns the CoreGraphics backend.
func newBackend(_ options) (Backend, error) {
	return cgBackend{}, nil
}

// MoveTo posts a mouse-moved event at (x, y).
func (cgBackend) MoveTo(x, y int) error {
	return cgStatus(C.cgPostMouse(C.uint32_t(cgMouseMoved), C.double(x), C.double(y), C.uint32_t(cgButtonLeft)))
}

// Button posts a button event at the current cursor location.
func (cgBackend) Button(btn Button, d Direction) error {
	eventType, button, err := cgButtonEvent(btn, d)
	if err != nil {
		return err
	}
	var x, y C.double
	if err := cgStatus(C.cgLocation(&x, &y)); err != nil {
		return err
	}
	return cgStatus(C.cgPostMouse(C.uint32_t(eventType), x, y, C.uint32_t(button)))
}

// Wheel posts a line-unit scroll event.
func (cgBackend) Wheel(a Axis, delta int) error {
	count, wheel1, wheel2, err := cgWheelDeltas(a, delta)
	if err != nil {
		return err
	}
	return cgStatus(C.cgPostScroll(C.uint32_t(count), C.int32_t(wheel1), C.int32_t(wheel2)))
}

// Position reads the location of a fresh null event.
func (cgBackend) Position() (Point, error) {
	var x, y C.double
	if err := cgStatus(C.cgLocation(&x, &y)); err != nil {
		return Point{}, err
	}
	return Point{X: int(x), Y: int(y)}, nil
}

// Close is a no-op; every call creates and releases its own event source.
func (cgBackend) Close() error {
	return nil
}

// cgStatus maps the helper return codes onto package errors.
func cgStatus(rc C.int) error {
	switch int(rc) {
	case 0:
		return nil
	case -1:
		return ErrEventSource
	default:
		return ErrEventNotCreated
	}
}
