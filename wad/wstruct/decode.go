package wstruct

import (
	"os"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/ds"
	"github.com/thanhnguyen2187/wadex/logging"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
	"github.com/thanhnguyen2187/wadex/wad/wheader"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
)

// Decode decodes the header of bs and positions the directory. No lump is
// decoded until the directory is walked.
func Decode(bs []byte, cfg Config) (*Archive, error) {
	view := lbytes.NewView(bs)
	reader := lbytes.NewReader(view, 0)

	header, err := wheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "wstruct.Decode error")
	}

	archive := Archive{
		Header:    *header,
		Directory: wlump.NewDirectory(view, header.DirectoryOffset),
		view:      view,
	}
	if mismatch := archive.Mismatch(); mismatch != nil && cfg.Strict {
		return nil, errors.Wrap(*mismatch, "wstruct.Decode error")
	}

	return &archive, nil
}

func DecodeFile(path string, cfg Config) (*Archive, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrUnreadableSource{Path: path, Err: err}
	}
	logging.L().Debug().Str("path", path).Int("size", len(bs)).Msg("read WAD file")

	archive, err := Decode(bs, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, `wstruct.DecodeFile error: "%s"`, path)
	}
	logging.L().Debug().Str("path", path).RawJSON("header", ds.DumpJSON(archive.Header)).Msg("decoded WAD header")
	if mismatch := archive.Mismatch(); mismatch != nil {
		logging.L().Warn().
			Str("path", path).
			Int32("declared", mismatch.Declared).
			Int("decoded", mismatch.Decoded).
			Int("remainder", mismatch.Remainder).
			Msg("lump directory does not match header")
	}

	return archive, nil
}

// ToOrderedMap lays the archive out in on-disk order for display: header
// fields first, then every lump descriptor.
func ToOrderedMap(archive Archive) (*orderedmap.OrderedMap, error) {
	descriptors, err := archive.Directory.Descriptors()
	if err != nil {
		return nil, errors.Wrap(err, "wstruct.ToOrderedMap error")
	}

	lhm := orderedmap.New()
	lhm.Set("kind", archive.Header.Kind)
	lhm.Set("lump_count", archive.Header.LumpCount)
	lhm.Set("directory_offset", archive.Header.DirectoryOffset)
	lhm.Set("lumps", descriptors)
	return lhm, nil
}
