package wstruct

import (
	"fmt"
)

type (
	ErrUnreadableSource struct {
		Path string
		Err  error
	}
	// ErrDirectoryMismatch describes a directory whose decoded entries do not
	// line up with the header.
	ErrDirectoryMismatch struct {
		Declared  int32 `json:"declared"`
		Decoded   int   `json:"decoded"`
		Remainder int   `json:"remainder"`
	}
	ErrLumpNotFound struct {
		Name string
	}
)

func (r ErrUnreadableSource) Error() string {
	return fmt.Sprintf("unreadable file %q: %v", r.Path, r.Err)
}

func (r ErrUnreadableSource) Unwrap() error {
	return r.Err
}

func (r ErrDirectoryMismatch) Error() string {
	return fmt.Sprintf(
		"directory mismatch: header declares %d lumps, %d decoded, %d trailing bytes",
		r.Declared, r.Decoded, r.Remainder,
	)
}

func (r ErrLumpNotFound) Error() string {
	return fmt.Sprintf("lump %q not found", r.Name)
}
