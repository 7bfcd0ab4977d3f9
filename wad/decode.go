package wad

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
)

// DecodeWAD renders the archive in bs as indented JSON. With debug set, the
// output also carries the directory bookkeeping and the level markers.
func DecodeWAD(bs []byte, debug bool) ([]byte, error) {
	archive, err := wstruct.Decode(bs, wstruct.Config{})
	if err != nil {
		return nil, err
	}

	if debug {
		lumps, err := archive.Directory.Descriptors()
		if err != nil {
			return nil, errors.Wrap(err, "DecodeWAD error")
		}
		output := debugOutput{
			Header:          archive.Header,
			DirectoryLength: archive.Directory.Len(),
			Remainder:       archive.Directory.Remainder(),
			Mismatch:        archive.Mismatch(),
			Maps:            archive.Maps(),
			Lumps:           lumps,
		}
		return json.MarshalIndent(output, "", "  ")
	}

	decodedMap, err := wstruct.ToOrderedMap(*archive)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeWAD error")
	}
	return json.MarshalIndent(decodedMap, "", "  ")
}
