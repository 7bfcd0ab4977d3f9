package lbytes

func NewBytesReader(bs []byte) *Reader {
	return NewReader(NewView(bs), 0)
}

// NewReader starts reading view at offset.
func NewReader(view View, offset int) *Reader {
	return &Reader{
		view:   view,
		offset: offset,
	}
}

// Offset is the absolute position of the next read.
func (b *Reader) Offset() int {
	return b.offset
}

// ReadBytes returns the next n bytes. The cursor only advances on success.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs, err := b.view.Slice(b.offset, n)
	if err != nil {
		return nil, err
	}
	b.offset += n
	return bs, nil
}

func (b *Reader) ReadInt() (int32, error) {
	result, err := b.view.Int32(b.offset)
	if err != nil {
		return 0, err
	}
	b.offset += IntSize
	return result, nil
}

func (b *Reader) ReadShort() (int16, error) {
	result, err := b.view.Int16(b.offset)
	if err != nil {
		return 0, err
	}
	b.offset += ShortSize
	return result, nil
}

func (b *Reader) ReadUShort() (uint16, error) {
	result, err := b.view.Uint16(b.offset)
	if err != nil {
		return 0, err
	}
	b.offset += ShortSize
	return result, nil
}

// ReadString reads n bytes of NUL-padded text; everything from the first NUL
// on is dropped.
func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return DecodeName(bs), nil
}
