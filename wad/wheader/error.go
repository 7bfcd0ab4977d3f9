package wheader

import (
	"fmt"
)

type (
	// ErrUnknownArchiveKind carries the magic text that matched no Kind.
	ErrUnknownArchiveKind struct {
		Text string
	}
)

func (r ErrUnknownArchiveKind) Error() string {
	return fmt.Sprintf("unknown WAD type %q", r.Text)
}
