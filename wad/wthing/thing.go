package wthing

import (
	"math"

	"golang.org/x/exp/constraints"
)

func (t Thing) SkillEasy() bool {
	return t.Flags&FlagSkillEasy != 0
}

func (t Thing) SkillMedium() bool {
	return t.Flags&FlagSkillMedium != 0
}

func (t Thing) SkillHard() bool {
	return t.Flags&FlagSkillHard != 0
}

// Ambush things stay deaf until they see the player.
func (t Thing) Ambush() bool {
	return t.Flags&FlagAmbush != 0
}

func (t Thing) MultiplayerOnly() bool {
	return t.Flags&FlagMultiplayerOnly != 0
}

// Radians converts the facing angle, stored in degrees with 0 pointing east.
func (t Thing) Radians() float64 {
	return degreesToRadians(t.Angle)
}

func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}
