//go:build darwin && cgo

package monitor

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>
*/
import "C"

import "errors"

const maxDisplays = 16

// ListMonitorsDisplay ignores display and returns ListMonitors.
func ListMonitorsDisplay(string) ([]Monitor, error) {
	return ListMonitors()
}

// ListMonitors returns the active CoreGraphics displays.
func ListMonitors() ([]Monitor, error) {
	displayIDs := make([]C.CGDirectDisplayID, maxDisplays)
	var displayCount C.uint32_t

	if C.CGGetActiveDisplayList(C.uint32_t(maxDisplays), &displayIDs[0], &displayCount) != C.kCGErrorSuccess {
		return nil, errors.New("CGGetActiveDisplayList failed")
	}
	if displayCount == 0 {
		return nil, ErrNoMonitors
	}

	mainID := C.CGMainDisplayID()
	list := make([]Monitor, 0, int(displayCount))
	for i := 0; i < int(displayCount); i++ {
		b := C.CGDisplayBounds(displayIDs[i])
		list = append(list, Monitor{
			Index:   i + 1,
			X:       int(b.origin.x),
			Y:       int(b.origin.y),
			W:       int(b.size.width),
			H:       int(b.size.height),
			Primary: displayIDs[i] == mainID,
		})
	}
	return list, nil
}
