// Package wpatch decodes the header that starts every picture (patch) lump.
package wpatch

type (
	Header struct {
		Width      uint16 `json:"width"`
		Height     uint16 `json:"height"`
		LeftOffset int16  `json:"left_offset"`
		TopOffset  int16  `json:"top_offset"`
	}
)

const (
	DefaultHeaderSize = 8
)
