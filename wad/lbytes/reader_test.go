package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadInt(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)
	assert.Equal(t, 8, reader.Offset())
}

func TestReader_ReadInt_Negative(t *testing.T) {
	reader := NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	result, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), result)
}

func TestReader_ReadShorts(t *testing.T) {
	reader := NewBytesReader([]byte{0xFE, 0xFF, 0xFE, 0xFF})

	signed, err := reader.ReadShort()
	assert.NoError(t, err)
	assert.Equal(t, int16(-2), signed)

	unsigned, err := reader.ReadUShort()
	assert.NoError(t, err)
	assert.Equal(t, uint16(65534), unsigned)
}

func TestReader_ReadString(t *testing.T) {
	reader := NewBytesReader([]byte("THINGS\x00\x00E1M1\x00\x00\x00\x00"))

	first, err := reader.ReadString(8)
	assert.NoError(t, err)
	assert.Equal(t, "THINGS", first)

	second, err := reader.ReadString(8)
	assert.NoError(t, err)
	assert.Equal(t, "E1M1", second)
}

func TestReader_Truncated(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3, 4, 5, 6})

	_, err := reader.ReadInt()
	require.NoError(t, err)

	_, err = reader.ReadInt()
	var truncated ErrTruncatedRead
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, ErrTruncatedRead{Offset: 4, Requested: 4, Available: 2}, truncated)
	// a failed read leaves the cursor where it was
	assert.Equal(t, 4, reader.Offset())

	short, err := reader.ReadShort()
	assert.NoError(t, err)
	assert.Equal(t, int16(0x0605), short)
}

func TestReader_ReadBytesZero(t *testing.T) {
	reader := NewBytesReader([]byte{})

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)
}
