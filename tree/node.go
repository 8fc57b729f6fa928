// Package tree provides path-tree nodes for representing solution paths
// through a puzzle's state space.
//
// A Node wraps one puzzle.State, owns an ordered list of child nodes
// (insertion order is discovery order), and holds a non-owning
// back-reference to its parent. Each child wraps a state that is a direct
// one-step extension of its parent's state.
//
// The solve package returns a fresh, childless, parentless Node wrapping
// the solved state; callers that want a full root-to-solution chain build
// it themselves with Attach and read it back with Path.
package tree

import (
	"strings"

	"github.com/puzzlekit/puzzlekit/puzzle"
)

// Node is one element of a path tree.
//
// State may be nil for a sentinel node. Parent is a plain back-pointer,
// never shared ownership, so an abandoned branch is reclaimable as soon
// as nothing else references it.
type Node struct {
	// State is the puzzle configuration this node wraps, or nil.
	State puzzle.State

	// Children holds the owned child nodes, in discovery order. Each
	// child's state is one legal move away from State.
	Children []*Node

	// Parent points to the node whose state this one extends, or nil for
	// a root.
	Parent *Node
}

// NewNode returns a Node wrapping state, owning a copy of children, and
// holding parent as its back-reference. The children slice is copied so
// the new node never aliases the caller's list; nil and empty are both
// fine.
func NewNode(state puzzle.State, children []*Node, parent *Node) *Node {
	n := &Node{State: state, Parent: parent}
	if len(children) > 0 {
		n.Children = make([]*Node, len(children))
		copy(n.Children, children)
	}
	return n
}

// Attach appends child to n's children, sets n as its parent, and
// returns child so chains of attachments read naturally.
func (n *Node) Attach(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Equal reports whether n and other wrap equal states and have mutually
// containing children collections — every child of n appears among
// other's children and vice versa, by node equality, ignoring order and
// duplicates. It is not a deep ordered-tree comparison.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if !stateEqual(n.State, other.State) {
		return false
	}
	return containsAll(other.Children, n.Children) &&
		containsAll(n.Children, other.Children)
}

// stateEqual treats two absent states as equal.
func stateEqual(a, b puzzle.State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// containsAll reports whether every node in want has an Equal match in
// have.
func containsAll(have, want []*Node) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if w.Equal(h) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Path returns the state sequence from the tree's root down to n,
// following Parent links. Sentinel nodes with nil states are skipped.
func (n *Node) Path() []puzzle.State {
	var rev []puzzle.State
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State != nil {
			rev = append(rev, cur.State)
		}
	}
	// reverse to get root → n
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// String renders the node's state display string, a blank line, and the
// newline-joined renderings of every child, recursively. A nil state
// renders as the empty string.
func (n *Node) String() string {
	var sb strings.Builder
	if n.State != nil {
		sb.WriteString(n.State.String())
	}
	sb.WriteString("\n\n")
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	sb.WriteString(strings.Join(parts, "\n"))
	return sb.String()
}
