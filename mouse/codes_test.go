package mouse

import (
	"errors"
	"math"
	"testing"
)

// TestWinButtonInput_Table verifies every button/direction pair maps to one SendInput flag.
func TestWinButtonInput_Table(t *testing.T) {
	cases := []struct {
		button Button
		dir    Direction
		flags  uint32
		data   uint32
	}{
		{Left, Down, 0x0002, 0},
		{Left, Up, 0x0004, 0},
		{Right, Down, 0x0008, 0},
		{Right, Up, 0x0010, 0},
		{Middle, Down, 0x0020, 0},
		{Middle, Up, 0x0040, 0},
		{X1, Down, 0x0080, 0x0001},
		{X1, Up, 0x0100, 0x0001},
		{X2, Down, 0x0080, 0x0002},
		{X2, Up, 0x0100, 0x0002},
	}
	for _, tc := range cases {
		flags, data, err := winButtonInput(tc.button, tc.dir)
		if err != nil {
			t.Fatalf("%s %s: unexpected error %v", tc.button, tc.dir, err)
		}
		if flags != tc.flags || data != tc.data {
			t.Fatalf("%s %s: expected (0x%x,0x%x), got (0x%x,0x%x)", tc.button, tc.dir, tc.flags, tc.data, flags, data)
		}
	}
}

// TestWinWheelInput_ScalesByWheelDelta verifies wheel data is delta*120 with sign preserved.
func TestWinWheelInput_ScalesByWheelDelta(t *testing.T) {
	flags, data, err := winWheelInput(Vertical, 2)
	if err != nil || flags != 0x0800 || data != 240 {
		t.Fatalf("expected (0x800,240,nil), got (0x%x,%d,%v)", flags, data, err)
	}
	flags, data, err = winWheelInput(Horizontal, -1)
	if err != nil || flags != 0x1000 || int32(data) != -120 {
		t.Fatalf("expected (0x1000,-120,nil), got (0x%x,%d,%v)", flags, int32(data), err)
	}
}

// TestCGButtonEvent_Table verifies CoreGraphics event types and buttons.
func TestCGButtonEvent_Table(t *testing.T) {
	cases := []struct {
		button    Button
		dir       Direction
		eventType uint32
		cgButton  uint32
	}{
		{Left, Down, 1, 0},
		{Left, Up, 2, 0},
		{Right, Down, 3, 1},
		{Right, Up, 4, 1},
		{Middle, Down, 25, 2},
		{Middle, Up, 26, 2},
		{X1, Down, 25, 3},
		{X2, Up, 26, 4},
	}
	for _, tc := range cases {
		eventType, button, err := cgButtonEvent(tc.button, tc.dir)
		if err != nil {
			t.Fatalf("%s %s: unexpected error %v", tc.button, tc.dir, err)
		}
		if eventType != tc.eventType || button != tc.cgButton {
			t.Fatalf("%s %s: expected (%d,%d), got (%d,%d)", tc.button, tc.dir, tc.eventType, tc.cgButton, eventType, button)
		}
	}
}

// TestCGWheelDeltas_Axes verifies the horizontal delta goes to the second wheel.
func TestCGWheelDeltas_Axes(t *testing.T) {
	count, w1, w2, err := cgWheelDeltas(Vertical, -3)
	if err != nil || count != 1 || w1 != -3 || w2 != 0 {
		t.Fatalf("unexpected vertical result (%d,%d,%d,%v)", count, w1, w2, err)
	}
	count, w1, w2, err = cgWheelDeltas(Horizontal, 4)
	if err != nil || count != 2 || w1 != 0 || w2 != 4 {
		t.Fatalf("unexpected horizontal result (%d,%d,%d,%v)", count, w1, w2, err)
	}
}

// TestX11Button_Table verifies core button numbers.
func TestX11Button_Table(t *testing.T) {
	want := map[Button]byte{Left: 1, Middle: 2, Right: 3, X1: 8, X2: 9}
	for b, code := range want {
		got, err := x11Button(b)
		if err != nil || got != code {
			t.Fatalf("%s: expected %d, got %d (%v)", b, code, got, err)
		}
	}
}

// TestX11WheelClicks_Directions verifies wheel buttons and click counts.
func TestX11WheelClicks_Directions(t *testing.T) {
	cases := []struct {
		axis   Axis
		delta  int
		button byte
		clicks int
	}{
		{Vertical, 3, 4, 3},
		{Vertical, -2, 5, 2},
		{Horizontal, -1, 6, 1},
		{Horizontal, 5, 7, 5},
		{Vertical, 0, 4, 0},
	}
	for _, tc := range cases {
		button, clicks, err := x11WheelClicks(tc.axis, tc.delta)
		if err != nil || button != tc.button || clicks != tc.clicks {
			t.Fatalf("%s %d: expected (%d,%d), got (%d,%d,%v)", tc.axis, tc.delta, tc.button, tc.clicks, button, clicks, err)
		}
	}
}

// TestTables_RejectUnknownValues verifies out-of-range enums are errors, not panics.
func TestTables_RejectUnknownValues(t *testing.T) {
	if _, _, err := winButtonInput(Button(42), Down); !errors.Is(err, ErrInvalidButton) {
		t.Fatalf("expected ErrInvalidButton, got %v", err)
	}
	if _, _, err := cgButtonEvent(Left, Direction(7)); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if _, err := x11Button(Button(-1)); !errors.Is(err, ErrInvalidButton) {
		t.Fatalf("expected ErrInvalidButton, got %v", err)
	}
	if _, _, err := winWheelInput(Axis(9), 1); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("expected ErrInvalidAxis, got %v", err)
	}
	if _, _, _, err := cgWheelDeltas(Axis(9), 1); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("expected ErrInvalidAxis, got %v", err)
	}
	if _, _, err := x11WheelClicks(Axis(9), 1); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("expected ErrInvalidAxis, got %v", err)
	}
}

// TestScaleAbsolute_Corners verifies virtual-desktop corners map to 0 and 65535.
func TestScaleAbsolute_Corners(t *testing.T) {
	dx, dy := scaleAbsolute(-1920, 0, -1920, 0, 3840, 1080)
	if dx != 0 || dy != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", dx, dy)
	}
	dx, dy = scaleAbsolute(1919, 1079, -1920, 0, 3840, 1080)
	if dx != 65535 || dy != 65535 {
		t.Fatalf("expected (65535,65535), got (%d,%d)", dx, dy)
	}
}

// TestWinWheelInput_SaturatesLargeDeltas verifies huge deltas keep their sign instead of wrapping.
func TestWinWheelInput_SaturatesLargeDeltas(t *testing.T) {
	want := int32(winMaxWheelNotches * winWheelDelta)
	_, data, err := winWheelInput(Vertical, 17895698)
	if err != nil || int32(data) != want {
		t.Fatalf("expected %d, got %d (%v)", want, int32(data), err)
	}
	_, data, err = winWheelInput(Horizontal, math.MinInt)
	if err != nil || int32(data) != -want {
		t.Fatalf("expected %d, got %d (%v)", -want, int32(data), err)
	}
}

// TestCGWheelDeltas_SaturatesToInt32 verifies deltas beyond int32 clamp to the range edge.
func TestCGWheelDeltas_SaturatesToInt32(t *testing.T) {
	_, w1, _, err := cgWheelDeltas(Vertical, math.MaxInt)
	if err != nil || w1 != math.MaxInt32 {
		t.Fatalf("expected %d, got %d (%v)", int32(math.MaxInt32), w1, err)
	}
	_, _, w2, err := cgWheelDeltas(Horizontal, math.MinInt)
	if err != nil || w2 != math.MinInt32 {
		t.Fatalf("expected %d, got %d (%v)", int32(math.MinInt32), w2, err)
	}
}

// TestX11Coord_Saturates verifies out-of-range coordinates pin to the INT16 edge.
func TestX11Coord_Saturates(t *testing.T) {
	cases := map[int]int16{0: 0, 1919: 1919, 40000: math.MaxInt16, 70000: math.MaxInt16, -40000: math.MinInt16}
	for in, want := range cases {
		if got := x11Coord(in); got != want {
			t.Fatalf("%d: expected %d, got %d", in, want, got)
		}
	}
}
