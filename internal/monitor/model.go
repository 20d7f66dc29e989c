// Package monitor describes display geometry and enumeration.
package monitor

import "errors"

var (
	// ErrNoMonitors is returned when enumeration finds no displays.
	ErrNoMonitors = errors.New("no monitors detected")
	// ErrUnsupported is returned on platforms without display enumeration.
	ErrUnsupported = errors.New("monitor enumeration is not supported on this platform")
)

// Monitor describes a display and its bounds in virtual-desktop pixels.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor, or the first one when none is flagged.
func Primary(list []Monitor) (Monitor, bool) {
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) == 0 {
		return Monitor{}, false
	}
	return list[0], true
}

// Bounds returns the smallest rectangle enclosing every monitor.
func Bounds(list []Monitor) (x, y, w, h int) {
	if len(list) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := list[0].X, list[0].Y
	maxX, maxY := list[0].X+list[0].W, list[0].Y+list[0].H
	for _, m := range list[1:] {
		minX = min(minX, m.X)
		minY = min(minY, m.Y)
		maxX = max(maxX, m.X+m.W)
		maxY = max(maxY, m.Y+m.H)
	}
	return minX, minY, maxX - minX, maxY - minY
}
