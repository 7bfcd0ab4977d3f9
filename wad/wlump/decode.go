package wlump

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

func DecodeEntry(reader *lbytes.Reader) (*Descriptor, error) {
	offset, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "wlump.DecodeEntry error: read offset")
	}
	size, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "wlump.DecodeEntry error: read size")
	}
	name, err := reader.ReadString(NameSize)
	if err != nil {
		return nil, errors.Wrap(err, "wlump.DecodeEntry error: read name")
	}

	return &Descriptor{
		Offset: offset,
		Size:   size,
		Name:   name,
	}, nil
}

// NewDirectory covers every full 16-byte stride between directoryOffset and
// the end of the view. An offset outside the view yields an empty directory.
func NewDirectory(view lbytes.View, directoryOffset int32) Directory {
	offset := int(directoryOffset)
	return Directory{
		view:   view,
		offset: offset,
		count:  view.Available(offset) / DefaultEntrySize,
	}
}

func (d Directory) Offset() int {
	return d.offset
}

func (d Directory) Len() int {
	return d.count
}

// Remainder is the size of the incomplete stride left after the last entry,
// which is never decoded.
func (d Directory) Remainder() int {
	return d.view.Available(d.offset) % DefaultEntrySize
}

func (d Directory) At(index int) (Descriptor, error) {
	if index < 0 || index >= d.count {
		return Descriptor{}, ErrIndexOutOfRange{Index: index, Len: d.count}
	}
	reader := lbytes.NewReader(d.view, d.offset+index*DefaultEntrySize)
	descriptor, err := DecodeEntry(reader)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "wlump.Directory.At error: entry %d", index)
	}
	return *descriptor, nil
}

// All yields the descriptors in directory order, decoding each one only when
// the consumer asks for it.
func (d Directory) All() iter.Seq2[int, Descriptor] {
	return func(yield func(int, Descriptor) bool) {
		for i := 0; i < d.count; i++ {
			descriptor, err := d.At(i)
			if err != nil {
				return
			}
			if !yield(i, descriptor) {
				return
			}
		}
	}
}

func (d Directory) Descriptors() ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, d.count)
	for i := 0; i < d.count; i++ {
		descriptor, err := d.At(i)
		if err != nil {
			return nil, errors.Wrap(err, "wlump.Directory.Descriptors error")
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

// Find returns the index of the first lump called name. Names compare
// case-insensitively.
func (d Directory) Find(name string) (int, bool) {
	return d.FindFrom(0, name)
}

func (d Directory) FindFrom(start int, name string) (int, bool) {
	for i := max(start, 0); i < d.count; i++ {
		descriptor, err := d.At(i)
		if err != nil {
			return -1, false
		}
		if strings.EqualFold(descriptor.Name, name) {
			return i, true
		}
	}
	return -1, false
}
