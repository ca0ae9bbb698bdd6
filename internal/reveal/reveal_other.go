//go:build !darwin && !windows

package reveal

// New returns a Revealer that does nothing; this platform has no file
// manager integration.
func New() Revealer {
	return Nop{}
}
