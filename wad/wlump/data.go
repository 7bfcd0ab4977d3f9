package wlump

import (
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

type (
	// Descriptor locates a lump's payload inside the archive buffer. It does not
	// own the payload bytes.
	Descriptor struct {
		Offset int32  `json:"offset"`
		Size   int32  `json:"size"`
		Name   string `json:"name"`
	}
	// Directory decodes descriptors on demand from the strides that start at a
	// directory offset. It holds no decoded state and can be walked any number
	// of times.
	Directory struct {
		view   lbytes.View
		offset int
		count  int
	}
)

const (
	DefaultEntrySize = 16
	NameSize         = 8
)
