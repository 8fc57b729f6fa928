// Package solve defines options, result types, and error values for the
// DepthFirst and BreadthFirst puzzle searches.
package solve

import (
	"errors"
	"fmt"

	"github.com/puzzlekit/puzzlekit/puzzle"
	"github.com/puzzlekit/puzzlekit/tree"
)

// Sentinel errors for search execution.
var (
	// ErrNilState is returned when a nil initial state is passed.
	ErrNilState = errors.New("solve: initial state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrStateLimit is returned when the WithMaxStates bound is exceeded
	// before any solution is generated.
	ErrStateLimit = errors.New("solve: state limit exceeded")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is
// invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// OnEnqueue, if non-nil, is called when a state is admitted to the
	// frontier. Receives the state and its depth from the start.
	OnEnqueue func(s puzzle.State, depth int)

	// OnVisit, if non-nil, is called when a frontier node is popped for
	// expansion. Returning an error aborts the search with that error.
	OnVisit func(s puzzle.State, depth int) error

	// MaxDepth, if > 0, prunes extensions beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxStates, if > 0, aborts the search with ErrStateLimit once more
	// than this many states have been enqueued. A value of 0 disables
	// the limit. This is the effort bound for callers that cannot afford
	// to exhaust a large reachable space.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hooks and no limits.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: nil,
		OnVisit:   nil,
		MaxDepth:  0,
		MaxStates: 0,
		err:       nil,
	}
}

// WithOnEnqueue registers a callback to run when a state joins the
// frontier.
func WithOnEnqueue(fn func(s puzzle.State, depth int)) Option {
	return func(o *Options) {
		o.OnEnqueue = fn
	}
}

// WithOnVisit registers a callback to run when a node is popped for
// expansion; returning an error from this callback stops the search.
func WithOnVisit(fn func(s puzzle.State, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth prunes extensions beyond the given depth.
//
//	d > 0:  limit exploration to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds how many states the search may enqueue.
//
//	n > 0:  abort with ErrStateLimit past n enqueued states
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of one search run.
//
// Solution is nil when the reachable space was exhausted without
// generating a solved state; that outcome is not an error.
type Result struct {
	// Solution is a fresh node wrapping the first solved state generated,
	// with no children and no parent, or nil if none was found.
	Solution *tree.Node

	// Expanded counts frontier nodes popped and expanded.
	Expanded int

	// Enqueued counts extensions admitted to the frontier.
	Enqueued int

	// Pruned counts extensions rejected by fail-fast, the visited set,
	// dead-end detection, or the depth limit.
	Pruned int
}

// Found reports whether the search produced a solution.
func (r *Result) Found() bool {
	return r.Solution != nil
}
