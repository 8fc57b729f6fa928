package solve

import "github.com/puzzlekit/puzzlekit/puzzle"

// BreadthFirst searches the state space reachable from start in
// breadth-first order: the frontier is treated as a queue, so the oldest
// enqueued state is always expanded next.
//
// Filtering, visited-set, and solution-detection rules are identical to
// DepthFirst — only the expansion order differs, so when solutions exist
// at several depths BreadthFirst reaches a shallower one first.
//
// Result and error semantics match DepthFirst: a nil Solution with a nil
// error means the reachable space held no solution.
func BreadthFirst(start puzzle.State, opts ...Option) (*Result, error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.run(w.popOldest)
}
