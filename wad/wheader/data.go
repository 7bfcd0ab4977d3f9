package wheader

import (
	"github.com/thanhnguyen2187/wadex/ds"
)

type (
	// Kind tells whether an archive is a complete game (IWAD) or a patch
	// applied on top of one (PWAD).
	Kind   int
	Header struct {
		Kind            Kind  `json:"kind"`
		LumpCount       int32 `json:"lump_count"`
		DirectoryOffset int32 `json:"directory_offset"`
	}
)

// The zero Kind is not a valid archive kind, so an unset header cannot pass
// for an IWAD.
const (
	KindInitial Kind = iota + 1
	KindPatch
)

const (
	DefaultHeaderSize = 12
	MagicSize         = 4

	MagicInitial = "IWAD"
	MagicPatch   = "PWAD"
)

func (k Kind) String() string {
	switch k {
	case KindInitial:
		return MagicInitial
	case KindPatch:
		return MagicPatch
	}
	panic(ds.ErrUnreachableCode{Caller: "wheader.Kind.String", Value: int(k)})
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
