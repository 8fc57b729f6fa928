// Package solve searches a puzzle's state space for a solved
// configuration, depth-first or breadth-first.
//
// What
//
//   - DepthFirst(start, opts...): explore newest-enqueued states first
//     (stack order); finds some solution with no depth guarantee.
//   - BreadthFirst(start, opts...): explore oldest-enqueued states first
//     (queue order); favors shallower solutions.
//   - Both return a Result whose Solution field is a fresh tree.Node
//     wrapping the first solved state generated, or nil when the
//     reachable space is exhausted ("no solution" is not an error).
//   - Supports functional hooks: OnEnqueue (a state joins the frontier)
//     and OnVisit (a node is popped; may abort with an error).
//   - Honors MaxDepth (d>0) and MaxStates (n>0) limits, or explicit
//     "no limit" at 0.
//
// How
//
//	Both searches share one loop. Each iteration pops a node and asks its
//	state for extensions; for each extension, in the puzzle's order:
//	  - a solved extension wins immediately — the search returns a fresh
//	    childless, parentless node wrapping it, without examining its
//	    siblings or anything deeper;
//	  - an extension is pruned when it fails fast, when its canonical
//	    string is already in the visited set, or when it is a dead end
//	    (non-solved with zero extensions of its own);
//	  - anything else is recorded in the visited set and enqueued.
//	The two entry points differ only in which end of the frontier they
//	pop from.
//
// The initial state itself is never tested with IsSolved: a solution is
// only recognized at the moment it is generated as an extension, so a
// puzzle that starts out already solved reports "no solution found".
// Callers that need to accept pre-solved inputs should test
// start.IsSolved() before searching.
//
// Determinism
//
//	The frontier and visited set are local to one call, so two runs from
//	equal starts explore identically; the visit sequence is exactly as
//	reproducible as the puzzle's Extensions order.
//
// Complexity (S = reachable, non-pruned states)
//
//   - Time:   O(S · e) where e bounds the per-state extension count.
//   - Memory: O(S) for the frontier and visited set; in the worst case
//     (no solution, dense space) the whole reachable space is retained.
//
// Errors
//
//   - ErrNilState          if start is nil.
//   - ErrOptionViolation   for invalid options (negative limits).
//   - ErrStateLimit        when MaxStates is exceeded.
//   - any error returned by the OnVisit hook.
package solve
