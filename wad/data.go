// Package wad decodes DOOM's data archives (WAD files): the header, the lump
// directory and the patch and thing records found in lump payloads.
package wad

import (
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
	"github.com/thanhnguyen2187/wadex/wad/wheader"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
)

type (
	ErrTruncatedRead      = lbytes.ErrTruncatedRead
	ErrUnknownArchiveKind = wheader.ErrUnknownArchiveKind
	ErrUnreadableSource   = wstruct.ErrUnreadableSource
	ErrDirectoryMismatch  = wstruct.ErrDirectoryMismatch
	ErrLumpNotFound       = wstruct.ErrLumpNotFound
	ErrIndexOutOfRange    = wlump.ErrIndexOutOfRange

	debugOutput struct {
		Header          wheader.Header                `json:"header"`
		DirectoryLength int                           `json:"directory_length"`
		Remainder       int                           `json:"remainder"`
		Mismatch        *wstruct.ErrDirectoryMismatch `json:"mismatch"`
		Maps            []wstruct.MapMarker           `json:"maps"`
		Lumps           []wlump.Descriptor            `json:"lumps"`
	}
)

func IsWADFile(bs []byte) bool {
	return wheader.IsValidMagic(bs)
}
