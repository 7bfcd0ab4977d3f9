// Package fixture assembles WAD images in memory for tests.
package fixture

import (
	"encoding/binary"

	"github.com/samber/lo"
	"github.com/thanhnguyen2187/wadex/ds"
)

type (
	Lump struct {
		Name string
		Data []byte
	}
)

const (
	headerSize = 12
	nameSize   = 8
)

func Header(magic string, lumpCount int32, directoryOffset int32) []byte {
	bs := make([]byte, 0, headerSize)
	bs = append(bs, magic...)
	bs = binary.LittleEndian.AppendUint32(bs, uint32(lumpCount))
	bs = binary.LittleEndian.AppendUint32(bs, uint32(directoryOffset))
	return bs
}

// Name pads or cuts name to the 8-byte on-disk field.
func Name(name string) []byte {
	bs := []byte(name)
	if len(bs) >= nameSize {
		return bs[:nameSize]
	}
	return append(bs, ds.Repeat(nameSize-len(bs), byte(0))...)
}

func Entry(offset int32, size int32, name string) []byte {
	bs := make([]byte, 0, 16)
	bs = binary.LittleEndian.AppendUint32(bs, uint32(offset))
	bs = binary.LittleEndian.AppendUint32(bs, uint32(size))
	bs = append(bs, Name(name)...)
	return bs
}

// Build lays out a complete archive the way DOOM's own tools do: header,
// payloads in order, directory last.
func Build(magic string, lumps []Lump) []byte {
	payloadLength := lo.Reduce(
		lumps,
		func(total int, lump Lump, _ int) int {
			return total + len(lump.Data)
		},
		0,
	)
	directoryOffset := headerSize + payloadLength

	bs := Header(magic, int32(len(lumps)), int32(directoryOffset))
	directory := make([]byte, 0, 16*len(lumps))
	for _, lump := range lumps {
		directory = append(directory, Entry(int32(len(bs)), int32(len(lump.Data)), lump.Name)...)
		bs = append(bs, lump.Data...)
	}
	return append(bs, directory...)
}

func Patch(width uint16, height uint16, leftOffset int16, topOffset int16) []byte {
	bs := make([]byte, 0, 8)
	bs = binary.LittleEndian.AppendUint16(bs, width)
	bs = binary.LittleEndian.AppendUint16(bs, height)
	bs = binary.LittleEndian.AppendUint16(bs, uint16(leftOffset))
	bs = binary.LittleEndian.AppendUint16(bs, uint16(topOffset))
	return bs
}

func Thing(x, y, angle, thingType, flags int16) []byte {
	bs := make([]byte, 0, 10)
	for _, field := range []int16{x, y, angle, thingType, flags} {
		bs = binary.LittleEndian.AppendUint16(bs, uint16(field))
	}
	return bs
}

// Map returns a marker followed by the lumps a level is made of. Only THINGS
// carries data.
func Map(name string, things ...[]byte) []Lump {
	lumps := []Lump{
		{Name: name},
		{Name: "THINGS", Data: lo.Flatten(things)},
	}
	for _, lumpName := range []string{"LINEDEFS", "SIDEDEFS", "VERTEXES", "SEGS", "SSECTORS", "NODES", "SECTORS", "REJECT", "BLOCKMAP"} {
		lumps = append(lumps, Lump{Name: lumpName})
	}
	return lumps
}
