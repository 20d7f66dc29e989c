package mouse

import "errors"

// Sentinel errors returned by Mouse and the platform backends.
var (
	// ErrUnsupported is returned when the platform has no injection backend.
	ErrUnsupported = errors.New("mouse: platform not supported")
	// ErrInvalidButton reports a Button outside the known set.
	ErrInvalidButton = errors.New("mouse: invalid button")
	// ErrInvalidDirection reports a Direction other than Down or Up.
	ErrInvalidDirection = errors.New("mouse: invalid direction")
	// ErrInvalidAxis reports an Axis other than Vertical or Horizontal.
	ErrInvalidAxis = errors.New("mouse: invalid axis")
	// ErrEventSource is returned when CoreGraphics refuses an event source.
	ErrEventSource = errors.New("mouse: event source could not be created")
	// ErrEventNotCreated is returned when CoreGraphics cannot build an event.
	ErrEventNotCreated = errors.New("mouse: event could not be created")
	// ErrClosed is returned by operations on a closed Mouse.
	ErrClosed = errors.New("mouse: closed")
)
