//go:build !windows && !darwin && !linux

package mouse

// newBackend reports ErrUnsupported on platforms without an injection backend.
func newBackend(_ options) (Backend, error) {
	return nil, ErrUnsupported
}
