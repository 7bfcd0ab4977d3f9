package wlump

import (
	"fmt"
)

type (
	ErrIndexOutOfRange struct {
		Index int
		Len   int
	}
)

func (r ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("lump index %d out of range [0, %d)", r.Index, r.Len)
}
