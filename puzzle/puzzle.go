// Package puzzle defines the State contract that every concrete puzzle
// type must satisfy to be searchable by the solve package.
//
// A State is one immutable configuration of a puzzle instance. Advancing
// the puzzle never mutates a State in place: each legal move produces a
// fresh State value. That immutability is what lets the search core
// abandon a branch by simply not revisiting it — there is no shared
// board to restore.
//
// Implementations:
//
//   - IsSolved reports a complete, valid solution.
//   - Extensions enumerates every state one legal move away.
//   - FailFast cheaply proves a state unsolvable.
//   - String produces the canonical serialization used as the
//     visited-set key.
//   - Equal is structural equality, consistent with String identity.
package puzzle

import "fmt"

// State is one immutable configuration of a puzzle.
//
// The search core depends only on this capability set and never on a
// concrete puzzle's representation, so any conforming type plugs in.
type State interface {
	// IsSolved reports whether this state is a complete, valid solution.
	IsSolved() bool

	// Extensions returns every state reachable by exactly one legal move,
	// or an empty slice for a terminal state. The order is significant
	// only as an exploration tie-break, never for correctness.
	Extensions() []State

	// FailFast reports whether this state is provably unsolvable without
	// further search. It must be sound: returning true on a solvable
	// state makes the search silently miss solutions, while returning
	// false on an unsolvable one only costs extra exploration. A type may
	// always return false and remain correct, only slower.
	FailFast() bool

	// Equal reports structural equality with other. It must agree with
	// canonical-string identity: two states that are Equal produce the
	// same String. Only tree.Node comparison consumes it; the search loop
	// keys its visited set on String instead.
	Equal(other State) bool

	// String returns the canonical serialization of this state: a pure,
	// deterministic function of the configuration, collision-free across
	// logically distinct reachable states. It doubles as the display
	// form, so implementations should keep it human-readable.
	fmt.Stringer
}
