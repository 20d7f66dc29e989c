package mouse

// Backend is a platform input-injection facility. Implementations receive
// validated enum values and perform exactly one platform call sequence per
// method.
type Backend interface {
	MoveTo(x, y int) error
	Button(b Button, d Direction) error
	Wheel(a Axis, delta int) error
	Position() (Point, error)
	Close() error
}

// Pointer is the operation set provided by *Mouse.
type Pointer interface {
	MoveTo(x, y int) error
	Press(b Button) error
	Release(b Button) error
	Click(b Button) error
	Wheel(delta int) error
	HWheel(delta int) error
	Position() (Point, error)
}

var _ Pointer = (*Mouse)(nil)
