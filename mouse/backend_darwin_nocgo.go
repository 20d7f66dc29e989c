//go:build darwin && !cgo

package mouse

// newBackend reports ErrUnsupported since CoreGraphics is only reachable through cgo.
func newBackend(_ options) (Backend, error) {
	return nil, ErrUnsupported
}
