package wstruct

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/ds"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
	"github.com/thanhnguyen2187/wadex/wad/wthing"
)

// Mismatch reports whether the directory disagrees with the header, or nil
// when the two agree. A mismatch is never reconciled.
func (a Archive) Mismatch() *ErrDirectoryMismatch {
	decoded := a.Directory.Len()
	remainder := a.Directory.Remainder()
	if a.Header.LumpCount == int32(decoded) && remainder == 0 {
		return nil
	}
	return &ErrDirectoryMismatch{
		Declared:  a.Header.LumpCount,
		Decoded:   decoded,
		Remainder: remainder,
	}
}

// Payload returns the bytes a descriptor points at. They alias the archive
// buffer.
func (a Archive) Payload(descriptor wlump.Descriptor) ([]byte, error) {
	bs, err := a.view.Slice(int(descriptor.Offset), int(descriptor.Size))
	if err != nil {
		return nil, errors.Wrapf(err, `wstruct.Archive.Payload error: lump "%s"`, descriptor.Name)
	}
	return bs, nil
}

// Lump finds the first lump called name and returns it with its payload.
func (a Archive) Lump(name string) (wlump.Descriptor, []byte, error) {
	index, ok := a.Directory.Find(name)
	if !ok {
		return wlump.Descriptor{}, nil, ErrLumpNotFound{Name: name}
	}
	return a.lumpAt(index)
}

func (a Archive) lumpAt(index int) (wlump.Descriptor, []byte, error) {
	descriptor, err := a.Directory.At(index)
	if err != nil {
		return wlump.Descriptor{}, nil, errors.Wrap(err, "wstruct.Archive.lumpAt error")
	}
	payload, err := a.Payload(descriptor)
	if err != nil {
		return wlump.Descriptor{}, nil, err
	}
	return descriptor, payload, nil
}

// NameIndex maps every lump name to the directory indexes carrying it, in the
// order names first appear. Names repeat across levels and patch archives.
func (a Archive) NameIndex() *ds.LinkedHashMap[string, []int] {
	index := ds.NewLinkedHashMap[string, []int]()
	for i, descriptor := range a.Directory.All() {
		index.Update(descriptor.Name, func(indexes []int) []int {
			return append(indexes, i)
		})
	}
	return index
}

// Maps lists the level markers in directory order.
func (a Archive) Maps() []MapMarker {
	markers := make([]MapMarker, 0)
	previous := wlump.Descriptor{}
	for i, descriptor := range a.Directory.All() {
		if i > 0 && descriptor.Name == wthing.LumpName {
			markers = append(markers, MapMarker{Name: previous.Name, Index: i - 1})
		}
		previous = descriptor
	}
	return markers
}

// MapLump finds the lump called lumpName within the block of the level
// called mapName. The block ends at the next level's marker, or MapLumpCount
// lumps past the marker for the last level.
func (a Archive) MapLump(mapName string, lumpName string) (wlump.Descriptor, []byte, error) {
	marker, ok := a.Directory.Find(mapName)
	if !ok {
		return wlump.Descriptor{}, nil, ErrLumpNotFound{Name: mapName}
	}
	end := marker + MapLumpCount + 1
	for _, next := range a.Maps() {
		if next.Index > marker {
			end = min(end, next.Index)
			break
		}
	}
	index, ok := a.Directory.FindFrom(marker+1, lumpName)
	if !ok || index >= end {
		return wlump.Descriptor{}, nil, ErrLumpNotFound{Name: mapName + "/" + lumpName}
	}
	return a.lumpAt(index)
}
