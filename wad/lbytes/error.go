package lbytes

import (
	"fmt"
)

type (
	// ErrTruncatedRead is returned whenever a fixed-width field needs more bytes
	// than the buffer still holds from the requested offset.
	ErrTruncatedRead struct {
		Offset    int
		Requested int
		Available int
	}
)

func (r ErrTruncatedRead) Error() string {
	return fmt.Sprintf(
		"truncated read at offset %d: requested %d bytes, %d available",
		r.Offset, r.Requested, r.Available,
	)
}
