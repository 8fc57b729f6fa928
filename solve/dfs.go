package solve

import "github.com/puzzlekit/puzzlekit/puzzle"

// DepthFirst searches the state space reachable from start in
// depth-first order: the frontier is treated as a stack, so the most
// recently enqueued state is always expanded next.
//
// On success, Result.Solution is a fresh node wrapping the first solved
// state generated, with no children and no parent. When the reachable
// space is exhausted without a solution, Result.Solution is nil and the
// error is nil. Returns ErrNilState for a nil start, ErrOptionViolation
// for bad options, ErrStateLimit past the WithMaxStates bound, or any
// error returned by the OnVisit hook.
//
// Any solution is acceptable: depth-first order makes no promise about
// solution depth. Use BreadthFirst to favor shallower solutions.
func DepthFirst(start puzzle.State, opts ...Option) (*Result, error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.run(w.popNewest)
}
