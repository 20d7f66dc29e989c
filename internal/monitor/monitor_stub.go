//go:build !windows && !linux && !(darwin && cgo)

package monitor

// ListMonitors returns ErrUnsupported.
func ListMonitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}

// ListMonitorsDisplay returns ErrUnsupported.
func ListMonitorsDisplay(string) ([]Monitor, error) {
	return nil, ErrUnsupported
}
