package registry

import "fmt"

// State is the lifecycle phase of a Registry.
type State uint8

const (
	// StateOpen accepts registrations; nothing has been finalized yet.
	StateOpen State = iota
	// StateFailed is StateOpen after a Finalize that reported unresolved
	// field types. Registrations are still accepted and Finalize may be retried.
	StateFailed
	// StateFinalized is terminal: read-only and fully resolved.
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateFailed:
		return "failed"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// AcceptsRegistrations reports whether descriptors may still be registered.
func (s State) AcceptsRegistrations() bool {
	return s != StateFinalized
}
