package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that a closed set of values should never
	// reach, such as the default case of an exhaustive enum switch.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Value == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code with value %v", r.Caller, r.Value)
}
