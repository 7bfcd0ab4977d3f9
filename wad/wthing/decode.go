package wthing

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/ds"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

func Decode(reader *lbytes.Reader) (*Thing, error) {
	fields := make([]int16, 0, DefaultThingSize/lbytes.ShortSize)
	for _, key := range []string{"x", "y", "angle", "type", "flags"} {
		field, err := reader.ReadShort()
		if err != nil {
			return nil, errors.Wrapf(err, `wthing.Decode error: read key "%s"`, key)
		}
		fields = append(fields, field)
	}

	return &Thing{
		X:     fields[0],
		Y:     fields[1],
		Angle: fields[2],
		Type:  fields[3],
		Flags: fields[4],
	}, nil
}

func DecodeBytes(bs []byte) (*Thing, error) {
	return Decode(lbytes.NewBytesReader(bs))
}

// DecodeLump decodes every record of a THINGS lump. A lump whose size is not
// a multiple of the record size fails on its last, incomplete record.
func DecodeLump(bs []byte) ([]Thing, error) {
	view := lbytes.NewView(bs)
	offsets := ds.MakeRange(0, len(bs), DefaultThingSize)
	things := make([]Thing, 0, len(offsets))
	for _, offset := range offsets {
		record, err := view.Slice(offset, DefaultThingSize)
		if err != nil {
			return nil, errors.Wrapf(err, "wthing.DecodeLump error: record %d", len(things))
		}
		thing, err := DecodeBytes(record)
		if err != nil {
			return nil, errors.Wrapf(err, "wthing.DecodeLump error: record %d", len(things))
		}
		things = append(things, *thing)
	}
	return things, nil
}

// CountLump reports how many complete records a THINGS lump of the given size
// holds.
func CountLump(size int32) int {
	return max(int(size), 0) / DefaultThingSize
}
