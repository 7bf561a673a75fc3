package readiness

import "fmt"

// State is the lifecycle position of the readiness gate.
//
// Transitions are one-way: NotStarted -> Probing -> Ready | Failed.
type State int32

const (
	StateNotStarted State = iota
	StateProbing
	StateReady
	StateFailed
)

// String returns the wire name of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateProbing:
		return "probing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// IsTerminal reports whether no further transition can happen.
func (s State) IsTerminal() bool {
	return s == StateReady || s == StateFailed
}
