// Package lbytes reads fixed-width little-endian fields out of a byte buffer
// without ever reading past its end.
package lbytes

type (
	// View is a read-only window over a whole buffer. Offsets are absolute.
	View struct {
		bs []byte
	}
	// Reader walks a View field by field.
	Reader struct {
		view   View
		offset int
	}
)

const (
	IntSize   = 4
	ShortSize = 2
)
