package lbytes

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

func NewView(bs []byte) View {
	return View{bs: bs}
}

func (v View) Len() int {
	return len(v.bs)
}

// Available returns the number of bytes between offset and the end of the
// buffer, or 0 when offset lies outside of it.
func (v View) Available(offset int) int {
	if offset < 0 || offset > len(v.bs) {
		return 0
	}
	return len(v.bs) - offset
}

// Slice returns exactly n bytes starting at offset. The result aliases the
// underlying buffer and must not be modified.
func (v View) Slice(offset int, n int) ([]byte, error) {
	available := v.Available(offset)
	if offset < 0 || offset > len(v.bs) || n < 0 || n > available {
		return nil, ErrTruncatedRead{
			Offset:    offset,
			Requested: n,
			Available: available,
		}
	}
	return v.bs[offset : offset+n : offset+n], nil
}

func (v View) Int32(offset int) (int32, error) {
	bs, err := v.Slice(offset, IntSize)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(bs)), nil
}

func (v View) Int16(offset int) (int16, error) {
	bs, err := v.Slice(offset, ShortSize)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(bs)), nil
}

func (v View) Uint16(offset int) (uint16, error) {
	bs, err := v.Slice(offset, ShortSize)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

// Name reads an n-byte NUL-padded text field.
func (v View) Name(offset int, n int) (string, error) {
	bs, err := v.Slice(offset, n)
	if err != nil {
		return "", err
	}
	return DecodeName(bs), nil
}

// DecodeName keeps the bytes before the first NUL and replaces invalid UTF-8
// with U+FFFD.
func DecodeName(bs []byte) string {
	if i := bytes.IndexByte(bs, 0); i != -1 {
		bs = bs[:i]
	}
	return DecodeText(bs)
}

// DecodeText converts raw bytes to text. Every maximal ill-formed UTF-8
// subsequence becomes one U+FFFD, so "\xFF\xFE" yields two and a truncated
// "\xE2\x82" yields one.
func DecodeText(bs []byte) string {
	if utf8.Valid(bs) {
		return string(bs)
	}
	builder := strings.Builder{}
	for len(bs) > 0 {
		r, size := utf8.DecodeRune(bs)
		if r == utf8.RuneError && size == 1 {
			builder.WriteRune(utf8.RuneError)
			bs = bs[invalidSequenceLen(bs):]
			continue
		}
		builder.Write(bs[:size])
		bs = bs[size:]
	}
	return builder.String()
}

// invalidSequenceLen returns how many bytes of an ill-formed sequence at the
// start of bs belong together: the lead byte plus the continuation bytes that
// were valid for it before the sequence broke off.
func invalidSequenceLen(bs []byte) int {
	lead := bs[0]
	low, high := byte(0x80), byte(0xBF)
	var width int
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		width = 2
	case lead == 0xE0:
		width, low = 3, 0xA0
	case lead == 0xED:
		width, high = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		width = 3
	case lead == 0xF0:
		width, low = 4, 0x90
	case lead >= 0xF1 && lead <= 0xF3:
		width = 4
	case lead == 0xF4:
		width, high = 4, 0x8F
	default:
		return 1
	}

	n := 1
	for ; n < width && n < len(bs); n++ {
		if bs[n] < low || bs[n] > high {
			break
		}
		low, high = 0x80, 0xBF
	}
	return n
}
