package wheader

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/lbytes"
)

func ParseKind(text string) (Kind, error) {
	switch text {
	case MagicInitial:
		return KindInitial, nil
	case MagicPatch:
		return KindPatch, nil
	}
	return 0, ErrUnknownArchiveKind{Text: text}
}

func IsValidMagic(bs []byte) bool {
	if len(bs) < MagicSize {
		return false
	}
	_, err := ParseKind(string(bs[:MagicSize]))
	return err == nil
}

// Decode reads the magic before the two counters, so a buffer that starts
// with a foreign signature is reported as such even when it is shorter than a
// full header.
func Decode(reader *lbytes.Reader) (*Header, error) {
	magic, err := reader.ReadBytes(MagicSize)
	if err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error: read magic")
	}
	kind, err := ParseKind(lbytes.DecodeText(magic))
	if err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error")
	}

	lumpCount, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error: read lump count")
	}
	directoryOffset, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error: read directory offset")
	}

	return &Header{
		Kind:            kind,
		LumpCount:       lumpCount,
		DirectoryOffset: directoryOffset,
	}, nil
}

func DecodeBytes(bs []byte) (*Header, error) {
	return Decode(lbytes.NewBytesReader(bs))
}
