// Package wstruct decodes a whole WAD archive: the header once, then a lazy
// directory positioned by it.
package wstruct

import (
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
	"github.com/thanhnguyen2187/wadex/wad/wheader"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
)

type (
	Config struct {
		// Strict turns a directory that disagrees with the header's lump count,
		// or ends in an incomplete entry, into a decoding error.
		Strict bool
	}
	Archive struct {
		Header    wheader.Header
		Directory wlump.Directory
		view      lbytes.View
	}
	// MapMarker is the zero-size lump naming a level, found right before the
	// level's THINGS lump.
	MapMarker struct {
		Name  string `json:"name"`
		Index int    `json:"index"`
	}
)

const (
	// MapLumpCount bounds how far past a marker a level's lumps may sit:
	// THINGS, LINEDEFS, SIDEDEFS, VERTEXES, SEGS, SSECTORS, NODES, SECTORS,
	// REJECT, BLOCKMAP and Hexen's BEHAVIOR.
	MapLumpCount = 11
)
