package wpatch

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

func Decode(reader *lbytes.Reader) (*Header, error) {
	header := Header{}
	err := error(nil)

	header.Width, err = reader.ReadUShort()
	if err != nil {
		return nil, errors.Wrap(err, "wpatch.Decode error: read width")
	}
	header.Height, err = reader.ReadUShort()
	if err != nil {
		return nil, errors.Wrap(err, "wpatch.Decode error: read height")
	}
	header.LeftOffset, err = reader.ReadShort()
	if err != nil {
		return nil, errors.Wrap(err, "wpatch.Decode error: read left offset")
	}
	header.TopOffset, err = reader.ReadShort()
	if err != nil {
		return nil, errors.Wrap(err, "wpatch.Decode error: read top offset")
	}

	return &header, nil
}

// DecodeBytes decodes the header at the start of bs. Bytes past the header
// (the column offsets and posts) are ignored.
func DecodeBytes(bs []byte) (*Header, error) {
	return Decode(lbytes.NewBytesReader(bs))
}
