package control

import (
	"math"

	"github.com/frudas24/deskmouse/internal/cage"
	"github.com/frudas24/deskmouse/internal/monitor"
)

// NormToAbs maps normalized 0..1 coordinates onto a monitor in virtual-desktop pixels.
func NormToAbs(xn, yn float64, m monitor.Monitor) (int, int) {
	xn = clamp01(xn)
	yn = clamp01(yn)
	return m.X + normToPixels(xn, m.W), m.Y + normToPixels(yn, m.H)
}

// Confine clamps (x,y) into r. An empty r leaves the point unchanged.
func Confine(r cage.Rect, x, y int) (int, int) {
	if cage.Empty(r) {
		return x, y
	}
	return cage.Clamp(r, x, y)
}

// ConfineDesktop clamps (x,y) onto the bounding box of monitors. An empty
// list leaves the point unchanged.
func ConfineDesktop(monitors []monitor.Monitor, x, y int) (int, int) {
	bx, by, bw, bh := monitor.Bounds(monitors)
	return Confine(cage.Rect{X: bx, Y: by, W: bw, H: bh}, x, y)
}

// normToPixels converts a normalized offset into a pixel offset within span.
func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
