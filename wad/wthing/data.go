// Package wthing decodes map object placements stored in a level's THINGS
// lump.
package wthing

type (
	// Thing is one 10-byte placement record. Every field is a 16-bit signed
	// value on disk and stays one here.
	Thing struct {
		X     int16 `json:"x"`
		Y     int16 `json:"y"`
		Angle int16 `json:"angle"`
		Type  int16 `json:"type"`
		Flags int16 `json:"flags"`
	}
)

const (
	DefaultThingSize = 10
	LumpName         = "THINGS"
)

// Option bits of Thing.Flags.
const (
	FlagSkillEasy       = 0x0001 // skill levels 1 and 2
	FlagSkillMedium     = 0x0002 // skill level 3
	FlagSkillHard       = 0x0004 // skill levels 4 and 5
	FlagAmbush          = 0x0008
	FlagMultiplayerOnly = 0x0010
)
