package wlump

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/wadex/internal/fixture"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

func TestDecodeEntry(t *testing.T) {
	reader := lbytes.NewBytesReader(fixture.Entry(12, 1380, "THINGS"))

	descriptor, err := DecodeEntry(reader)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Offset: 12, Size: 1380, Name: "THINGS"}, *descriptor)
	assert.Equal(t, DefaultEntrySize, reader.Offset())
}

func TestDecodeEntry_FullWidthName(t *testing.T) {
	descriptor, err := DecodeEntry(lbytes.NewBytesReader(fixture.Entry(0, 0, "SIDEDEFS")))
	require.NoError(t, err)
	assert.Equal(t, "SIDEDEFS", descriptor.Name)
}

func TestDecodeEntry_Truncated(t *testing.T) {
	entry := fixture.Entry(12, 10, "E1M1")
	for n := 0; n < DefaultEntrySize; n++ {
		_, err := DecodeEntry(lbytes.NewBytesReader(entry[:n]))
		assert.ErrorAsf(t, err, &lbytes.ErrTruncatedRead{}, "length %d", n)
	}
}

func createDirectory(numEntries int, padding int) []byte {
	bs := make([]byte, 0, numEntries*DefaultEntrySize+padding)
	for i := 0; i < numEntries; i++ {
		bs = append(bs, fixture.Entry(int32(i*10), int32(i), "LUMP")...)
	}
	return append(bs, make([]byte, padding)...)
}

func TestNewDirectory_Len(t *testing.T) {
	tests := map[string]struct {
		length    int
		offset    int32
		expected  int
		remainder int
	}{
		"exact fill":            {length: 12 + 3*16, offset: 12, expected: 3},
		"short by one":          {length: 12 + 3*16 - 1, offset: 12, expected: 2, remainder: 15},
		"short by fifteen":      {length: 12 + 3*16 - 15, offset: 12, expected: 2, remainder: 1},
		"trailing bytes":        {length: 12 + 3*16 + 5, offset: 12, expected: 3, remainder: 5},
		"offset at end":         {length: 64, offset: 64, expected: 0},
		"offset past end":       {length: 64, offset: 65, expected: 0},
		"negative offset":       {length: 64, offset: -16, expected: 0},
		"far negative offset":   {length: 64, offset: -2147483648, expected: 0},
		"empty buffer":          {length: 0, offset: 0, expected: 0},
		"zero offset":           {length: 32, offset: 0, expected: 2},
		"smaller than a stride": {length: 15, offset: 0, expected: 0, remainder: 15},
	}
	for name, test := range tests {
		directory := NewDirectory(lbytes.NewView(make([]byte, test.length)), test.offset)
		assert.Equalf(t, test.expected, directory.Len(), name)
		assert.Equalf(t, test.remainder, directory.Remainder(), name)
		yielded := 0
		for range directory.All() {
			yielded++
		}
		assert.Equalf(t, test.expected, yielded, name)
	}
}

func TestDirectory_All(t *testing.T) {
	bs := append(fixture.Header("PWAD", 3, 12), createDirectory(3, 7)...)
	directory := NewDirectory(lbytes.NewView(bs), 12)

	descriptors := make([]Descriptor, 0)
	for i, descriptor := range directory.All() {
		assert.Equal(t, len(descriptors), i)
		descriptors = append(descriptors, descriptor)
	}
	assert.Equal(
		t,
		[]Descriptor{
			{Offset: 0, Size: 0, Name: "LUMP"},
			{Offset: 10, Size: 1, Name: "LUMP"},
			{Offset: 20, Size: 2, Name: "LUMP"},
		},
		descriptors,
	)
}

func TestDirectory_AllIsRestartable(t *testing.T) {
	directory := NewDirectory(lbytes.NewView(createDirectory(4, 0)), 0)

	collect := func() []Descriptor {
		descriptors := make([]Descriptor, 0)
		for _, descriptor := range directory.All() {
			descriptors = append(descriptors, descriptor)
		}
		return descriptors
	}
	first := collect()
	second := collect()
	assert.Len(t, first, 4)
	assert.Equal(t, first, second)

	eager, err := directory.Descriptors()
	require.NoError(t, err)
	assert.Equal(t, first, eager)
}

func TestDirectory_AllStopsEarly(t *testing.T) {
	directory := NewDirectory(lbytes.NewView(createDirectory(10, 0)), 0)

	visited := make([]int, 0)
	for i := range directory.All() {
		visited = append(visited, i)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestDirectory_At(t *testing.T) {
	directory := NewDirectory(lbytes.NewView(createDirectory(2, 3)), 0)

	descriptor, err := directory.At(1)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Offset: 10, Size: 1, Name: "LUMP"}, descriptor)

	for _, index := range []int{-1, 2, 100} {
		_, err := directory.At(index)
		var outOfRange ErrIndexOutOfRange
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, ErrIndexOutOfRange{Index: index, Len: 2}, outOfRange)
	}
}

func TestDirectory_Find(t *testing.T) {
	bs := make([]byte, 0)
	for i, name := range []string{"E1M1", "THINGS", "E1M2", "THINGS", "PLAYPAL"} {
		bs = append(bs, fixture.Entry(int32(i), 0, name)...)
	}
	directory := NewDirectory(lbytes.NewView(bs), 0)

	index, ok := directory.Find("THINGS")
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	index, ok = directory.FindFrom(2, "things")
	assert.True(t, ok)
	assert.Equal(t, 3, index)

	index, ok = directory.Find("COLORMAP")
	assert.False(t, ok)
	assert.Equal(t, -1, index)

	index, ok = directory.FindFrom(-5, "E1M1")
	assert.True(t, ok)
	assert.Equal(t, 0, index)
}
